package domain

// Capabilities maps generic actions to the capability names of one content type.
type Capabilities struct {
	EditPost           string `json:"edit_post"`
	ReadPost           string `json:"read_post"`
	DeletePost         string `json:"delete_post"`
	EditPosts          string `json:"edit_posts"`
	EditOthersPosts    string `json:"edit_others_posts"`
	PublishPosts       string `json:"publish_posts"`
	ReadPrivatePosts   string `json:"read_private_posts"`
	DeletePosts        string `json:"delete_posts"`
	DeleteOthersPosts  string `json:"delete_others_posts"`
	DeletePublished    string `json:"delete_published_posts"`
	EditPublishedPosts string `json:"edit_published_posts"`
	Read               string `json:"read"`
}

// ContentType is a registered content type.
type ContentType struct {
	Args
}

// Capabilities derives capability names from the capability type pair (singular, plural).
func (c ContentType) Capabilities() Capabilities {
	singular, plural := c.CapabilityType[0], c.CapabilityType[1]
	if singular == "" {
		singular = c.Name
	}
	if plural == "" {
		plural = singular + "s"
	}

	return Capabilities{
		EditPost:           "edit_" + singular,
		ReadPost:           "read_" + singular,
		DeletePost:         "delete_" + singular,
		EditPosts:          "edit_" + plural,
		EditOthersPosts:    "edit_others_" + plural,
		PublishPosts:       "publish_" + plural,
		ReadPrivatePosts:   "read_private_" + plural,
		DeletePosts:        "delete_" + plural,
		DeleteOthersPosts:  "delete_others_" + plural,
		DeletePublished:    "delete_published_" + plural,
		EditPublishedPosts: "edit_published_" + plural,
		Read:               "read",
	}
}

// GrantSet returns the capabilities granted to the configured roles, in grant order.
func (c ContentType) GrantSet() []string {
	caps := c.Capabilities()
	return []string{
		caps.EditPosts,
		caps.EditOthersPosts,
		caps.PublishPosts,
		caps.ReadPrivatePosts,
	}
}
