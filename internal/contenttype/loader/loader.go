// Package loader reads content-type argument overrides from a YAML file and turns them
// into registration filters.
package loader

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/allisson/jsondocs/internal/contenttype/domain"
	apperrors "github.com/allisson/jsondocs/internal/errors"
)

// Overrides lists the arguments a file may change. Absent keys keep the provider default.
type Overrides struct {
	Label             *string   `yaml:"label"`
	AddNewItem        *string   `yaml:"add_new_item"`
	Description       *string   `yaml:"description"`
	Public            *bool     `yaml:"public"`
	ExcludeFromSearch *bool     `yaml:"exclude_from_search"`
	PubliclyQueryable *bool     `yaml:"publicly_queryable"`
	ShowUI            *bool     `yaml:"show_ui"`
	ShowInNavMenus    *bool     `yaml:"show_in_nav_menus"`
	ShowInMenu        *bool     `yaml:"show_in_menu"`
	ShowInAdminBar    *bool     `yaml:"show_in_admin_bar"`
	MenuPosition      *int      `yaml:"menu_position"`
	MenuIcon          *string   `yaml:"menu_icon"`
	CapabilityType    []string  `yaml:"capability_type"`
	Supports          *[]string `yaml:"supports"`
	ShowInREST        *bool     `yaml:"show_in_rest"`
	RESTBase          *string   `yaml:"rest_base"`
}

// Parse decodes overrides, rejecting unknown keys.
func Parse(data []byte) (*Overrides, error) {
	var o Overrides
	if len(bytes.TrimSpace(data)) == 0 {
		return &o, nil
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&o); err != nil {
		return nil, apperrors.Wrapf(apperrors.ErrInvalidInput, "parse content type overrides: %v", err)
	}

	if n := len(o.CapabilityType); n > 2 {
		return nil, apperrors.Wrapf(apperrors.ErrInvalidInput, "capability_type takes at most 2 values, got %d", n)
	}
	return &o, nil
}

// LoadFile reads overrides from path. An empty path yields no overrides.
func LoadFile(path string) (*Overrides, error) {
	if path == "" {
		return &Overrides{}, nil
	}

	data, err := os.ReadFile(path) //nolint:gosec // operator-provided config path
	if err != nil {
		return nil, fmt.Errorf("read content type overrides %q: %w", path, err)
	}
	return Parse(data)
}

// Filter returns an ArgsFilter applying the overrides.
func (o *Overrides) Filter() domain.ArgsFilter {
	return func(a domain.Args) domain.Args {
		setString(&a.Label, o.Label)
		setString(&a.Labels.AddNewItem, o.AddNewItem)
		setString(&a.Description, o.Description)
		setBool(&a.Public, o.Public)
		setBool(&a.ExcludeFromSearch, o.ExcludeFromSearch)
		setBool(&a.PubliclyQueryable, o.PubliclyQueryable)
		setBool(&a.ShowUI, o.ShowUI)
		setBool(&a.ShowInNavMenus, o.ShowInNavMenus)
		setBool(&a.ShowInMenu, o.ShowInMenu)
		setBool(&a.ShowInAdminBar, o.ShowInAdminBar)
		setString(&a.MenuIcon, o.MenuIcon)
		setBool(&a.ShowInREST, o.ShowInREST)
		setString(&a.RESTBase, o.RESTBase)

		if o.MenuPosition != nil {
			a.MenuPosition = *o.MenuPosition
		}
		if o.Supports != nil {
			a.Supports = append([]string(nil), (*o.Supports)...)
		}
		switch len(o.CapabilityType) {
		case 1:
			a.CapabilityType = [2]string{o.CapabilityType[0], o.CapabilityType[0] + "s"}
		case 2:
			a.CapabilityType = [2]string{o.CapabilityType[0], o.CapabilityType[1]}
		}
		return a
	}
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}

func setBool(dst *bool, v *bool) {
	if v != nil {
		*dst = *v
	}
}
