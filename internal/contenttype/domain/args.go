// Package domain defines content types: their registration arguments, the capability
// names derived from them and the registry the rest of the application reads from.
package domain

// Labels holds the human-readable strings shown by the admin UI.
type Labels struct {
	Name       string `json:"name"`
	AddNewItem string `json:"add_new_item"`
}

// Args describes how a content type is registered and exposed.
type Args struct {
	Name              string    `json:"name"`
	Label             string    `json:"label"`
	Labels            Labels    `json:"labels"`
	Description       string    `json:"description"`
	Public            bool      `json:"public"`
	ExcludeFromSearch bool      `json:"exclude_from_search"`
	PubliclyQueryable bool      `json:"publicly_queryable"`
	ShowUI            bool      `json:"show_ui"`
	ShowInNavMenus    bool      `json:"show_in_nav_menus"`
	ShowInMenu        bool      `json:"show_in_menu"`
	ShowInAdminBar    bool      `json:"show_in_admin_bar"`
	MenuPosition      int       `json:"menu_position"`
	MenuIcon          string    `json:"menu_icon"`
	CapabilityType    [2]string `json:"capability_type"`
	Hierarchical      bool      `json:"hierarchical"`
	Supports          []string  `json:"supports"`
	ShowInREST        bool      `json:"show_in_rest"`
	RESTBase          string    `json:"rest_base"`
}

// ArgsFilter transforms registration arguments before a content type is registered.
type ArgsFilter func(Args) Args

// Provider supplies the default arguments of a content type.
type Provider interface {
	ContentTypeArgs() Args
}

// SupportsFeature reports whether the content type declares the given feature (e.g. "revisions").
func (a Args) SupportsFeature(feature string) bool {
	for _, f := range a.Supports {
		if f == feature {
			return true
		}
	}
	return false
}

// WithRESTBase returns a filter overriding the REST base. An empty base is ignored.
func WithRESTBase(base string) ArgsFilter {
	return func(a Args) Args {
		if base != "" {
			a.RESTBase = base
		}
		return a
	}
}

// JSONName is the name of the built-in JSON content type.
const JSONName = "json"

// JSONContentType is the built-in provider for documents storing arbitrary JSON.
type JSONContentType struct{}

// ContentTypeArgs returns the defaults of the JSON content type.
func (JSONContentType) ContentTypeArgs() Args {
	return Args{
		Name:  JSONName,
		Label: "JSON",
		Labels: Labels{
			Name:       "JSON",
			AddNewItem: "Add New JSON",
		},
		Description:       "A post type that stores arbitrary JSON configurations in its post content",
		Public:            false,
		ExcludeFromSearch: true,
		PubliclyQueryable: false,
		ShowUI:            true,
		ShowInNavMenus:    false,
		ShowInMenu:        true,
		ShowInAdminBar:    false,
		MenuPosition:      50,
		MenuIcon:          "dashicons-code-standards",
		CapabilityType:    [2]string{"json", "json"},
		Hierarchical:      false,
		Supports:          []string{"title", "revisions"},
		ShowInREST:        true,
		RESTBase:          "json",
	}
}
