package analysis

// Format is the wire encoding discriminator of a document
type Format uint8

const (
	Csv Format = iota
	Json
	JsonApi
)

var formatNames = []string{"Csv", "Json", "JsonApi"}

// Formats returns all formats
func Formats() []Format {
	return []Format{Csv, Json, JsonApi}
}

// Extension returns the output file extension for the format
func (f Format) Extension() string {
	switch f {
	case Csv:
		return ".csv"
	case Json, JsonApi:
		return ".json"
	}
	return ""
}

func (f Format) String() string {
	return enumName(formatNames, int(f))
}

func (f Format) MarshalText() ([]byte, error) {
	return marshalEnum(formatNames, int(f), "Format")
}

func (f *Format) UnmarshalText(text []byte) error {
	v, err := ParseFormat(string(text))
	if err != nil {
		return err
	}
	*f = v
	return nil
}

// ParseFormat parses a format variant name
func ParseFormat(name string) (Format, error) {
	idx, err := parseEnum(formatNames, name, "Format")
	return Format(idx), err
}
