// Package seed loads YAML fixtures into an empty or partially filled database.
package seed

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/cartonworks/stockline/internal/shared/utils"
)

type File struct {
	Users    []UserFixture    `yaml:"users" validate:"dive"`
	Dielines []DielineFixture `yaml:"dielines" validate:"dive"`
	Cartons  []CartonFixture  `yaml:"cartons" validate:"dive"`
}

type UserFixture struct {
	Name  string `yaml:"name" validate:"required,max=100"`
	Email string `yaml:"email" validate:"required,email"`
	Role  string `yaml:"role" validate:"omitempty,oneof=admin employee"`
}

type DimensionFixture struct {
	Length  float64 `yaml:"length" validate:"gt=0"`
	Breadth float64 `yaml:"breadth" validate:"gt=0"`
	Height  float64 `yaml:"height" validate:"gt=0"`
	UPS     int     `yaml:"ups" validate:"gte=1"`
}

type DielineFixture struct {
	Name       string             `yaml:"name" validate:"required,max=200"`
	Notes      string             `yaml:"notes"`
	CreatedBy  string             `yaml:"created_by" validate:"required,email"`
	Dimensions []DimensionFixture `yaml:"dimensions" validate:"required,min=1,dive"`
}

type CartonFixture struct {
	Name              string  `yaml:"name" validate:"required,max=200"`
	CompanyName       string  `yaml:"company_name" validate:"max=200"`
	Length            float64 `yaml:"length" validate:"gt=0"`
	Breadth           float64 `yaml:"breadth" validate:"gt=0"`
	Height            float64 `yaml:"height" validate:"gt=0"`
	TotalQuantity     int     `yaml:"total_quantity" validate:"gte=0"`
	AvailableQuantity *int    `yaml:"available_quantity" validate:"omitempty,gte=0"`
	CreatedBy         string  `yaml:"created_by" validate:"required,email"`
}

// Load decodes and validates a fixture document. Unknown keys are rejected
// so typos do not silently drop data.
func Load(r io.Reader) (*File, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var f File
	if err := dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("seed file is empty")
		}
		return nil, fmt.Errorf("failed to decode seed file: %w", err)
	}
	if err := utils.ValidateStruct(&f); err != nil {
		return nil, err
	}
	return &f, nil
}

func LoadFile(path string) (*File, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open seed file: %w", err)
	}
	defer fh.Close()
	return Load(fh)
}
