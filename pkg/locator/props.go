package locator

// Props carries one identifier under the two fixed keys end-to-end
// frameworks look for. Both fields are always identical by
// construction.
type Props struct {
	TestID             string `json:"testID" yaml:"testID"`
	AccessibilityLabel string `json:"accessibilityLabel" yaml:"accessibilityLabel"`
}

// BuildProps builds the identifier for in and republishes it as
// locator props. It performs no validation beyond Build's.
func BuildProps(in Input) (Props, error) {
	id, err := Build(in)
	if err != nil {
		return Props{}, err
	}
	return Props{TestID: id, AccessibilityLabel: id}, nil
}
