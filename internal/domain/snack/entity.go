package snack

import (
	"errors"
	"strings"
)

var (
	ErrInvalidSnackID = errors.New("snack id must be positive")
	ErrEmptyName      = errors.New("snack name cannot be empty")
)

type Snack struct {
	id       int
	name     string
	imageURL string
}

func NewSnack(id int, name, imageURL string) (*Snack, error) {
	if id <= 0 {
		return nil, ErrInvalidSnackID
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}
	return &Snack{
		id:       id,
		name:     name,
		imageURL: strings.TrimSpace(imageURL),
	}, nil
}

func (s *Snack) ID() int {
	return s.id
}

func (s *Snack) Name() string {
	return s.name
}

func (s *Snack) ImageURL() string {
	return s.imageURL
}
