package structs

type ContentType struct {
	Sys          ContentTypeSys     `json:"sys"`
	Name         string             `json:"name"`
	DisplayField string             `json:"displayField"`
	Fields       []ContentTypeField `json:"fields,omitempty"`
}

type ContentTypeSys struct {
	Id      string `json:"id"`
	Type    string `json:"type,omitempty"`
	Version int    `json:"version,omitempty"`
}

type ContentTypeField struct {
	Id        string `json:"id"`
	Name      string `json:"name"`
	Type      string `json:"type"`
	Localized bool   `json:"localized"`
}

type ContentTypes []ContentType
