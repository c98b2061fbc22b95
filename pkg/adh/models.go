package adh

// SDS and Asset API wire models. Field names and JSON casing follow the ADH
// REST API, which serializes PascalCase properties.

// TypeCode identifies the SDS primitive type of a property or metadata value.
type TypeCode string

const (
	TypeCodeObject      TypeCode = "Object"
	TypeCodeDateTime    TypeCode = "DateTime"
	TypeCodeDouble      TypeCode = "Double"
	TypeCodeDoubleArray TypeCode = "DoubleArray"
	TypeCodeInt64       TypeCode = "Int64"
	TypeCodeString      TypeCode = "String"
)

// InterpolationMode controls how a stream fills values between stored events.
type InterpolationMode string

const (
	InterpolationContinuous InterpolationMode = "Continuous"
	InterpolationDiscrete   InterpolationMode = "Discrete"
)

// ExtrapolationMode controls how a stream answers queries outside its range.
type ExtrapolationMode string

const (
	ExtrapolationAll  ExtrapolationMode = "All"
	ExtrapolationNone ExtrapolationMode = "None"
)

// TypeProperty is a single property of an SDS type definition.
type TypeProperty struct {
	ID       string   `json:"Id"`
	IsKey    bool     `json:"IsKey"`
	TypeCode TypeCode `json:"SdsTypeCode"`
}

// Type is an SDS type definition.
type Type struct {
	ID          string         `json:"Id"`
	Name        string         `json:"Name"`
	Description string         `json:"Description,omitempty"`
	TypeCode    TypeCode       `json:"SdsTypeCode"`
	Properties  []TypeProperty `json:"Properties,omitempty"`
	CreatedDate string         `json:"CreatedDate,omitempty"`
}

// Stream is an SDS stream definition.
type Stream struct {
	ID                string            `json:"Id"`
	TypeID            string            `json:"TypeId"`
	Name              string            `json:"Name"`
	Description       string            `json:"Description,omitempty"`
	InterpolationMode InterpolationMode `json:"InterpolationMode,omitempty"`
	ExtrapolationMode ExtrapolationMode `json:"ExtrapolationMode,omitempty"`
	CreatedDate       string            `json:"CreatedDate,omitempty"`
}

// MetadataItem is one typed metadata field attached to an asset or asset type.
type MetadataItem struct {
	ID       string   `json:"Id"`
	Name     string   `json:"Name"`
	TypeCode TypeCode `json:"SdsTypeCode"`
	Value    any      `json:"Value,omitempty"`
}

// StreamReference links an asset to one of its backing streams under a role name.
type StreamReference struct {
	ID          string `json:"Id"`
	Name        string `json:"Name"`
	StreamID    string `json:"StreamReferenceId"`
	Description string `json:"Description,omitempty"`
}

// AssetType declares the metadata schema every asset of the type carries.
type AssetType struct {
	ID          string         `json:"Id"`
	Name        string         `json:"Name"`
	Description string         `json:"Description,omitempty"`
	Metadata    []MetadataItem `json:"Metadata,omitempty"`
	CreatedDate string         `json:"CreatedDate,omitempty"`
}

// Asset is the composite record combining metadata and stream references.
type Asset struct {
	ID               string            `json:"Id"`
	Name             string            `json:"Name"`
	Description      string            `json:"Description,omitempty"`
	AssetTypeID      string            `json:"AssetTypeId,omitempty"`
	Metadata         []MetadataItem    `json:"Metadata,omitempty"`
	StreamReferences []StreamReference `json:"StreamReferences,omitempty"`
	CreatedDate      string            `json:"CreatedDate,omitempty"`
}
