package model

// AnalyzeRequestBody is the POST /analyze payload.
type AnalyzeRequestBody struct {
	System        SystemID `json:"system"`
	Root          int      `json:"root"`
	PitchClasses  []int    `json:"pitch_classes"`
	NotationStyle string   `json:"notation_style,omitempty"`
	NamingScheme  string   `json:"naming_scheme,omitempty"`
}

// AnalyzeResponse mirrors HarmonicAnalysis on the wire, with the requested
// notation style already applied to the chord name when one matched.
type AnalyzeResponse struct {
	System      SystemID          `json:"system"`
	Root        int               `json:"root"`
	RootName    string            `json:"root_name"`
	MemberNames []string          `json:"member_names"`
	Matched     bool              `json:"matched"`
	ChordName   string            `json:"chord_name,omitempty"`
	ChordNames  map[string]string `json:"chord_names,omitempty"`
	Intervals   []int             `json:"intervals"`
	Tendencies  []TendencyTone    `json:"tendencies"`
	IsDominant  bool              `json:"is_dominant"`
	Function    Function          `json:"function"`
}

// SystemOverview is the GET /systems element.
type SystemOverview struct {
	System         SystemID `json:"system"`
	Steps          int      `json:"steps"`
	Templates      int      `json:"templates"`
	NotationStyles []string `json:"notation_styles"`
	NamingSchemes  []string `json:"naming_schemes"`
	CurrentScheme  string   `json:"current_scheme"`
	PerfectFifth   int      `json:"perfect_fifth"`
}

type ErrorResponse struct {
	Error string `json:"detail"`
}
