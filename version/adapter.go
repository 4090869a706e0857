package version

// Detect infers the schema version of a decoded JSON document tree.
// A document with any def lacking the attributes key is Legacy; parent is
// optional in every version and says nothing about the shape.
func Detect(tree map[string]interface{}) Version {
	defs, _ := tree["defs"].([]interface{})
	for _, item := range defs {
		def, ok := item.(map[string]interface{})
		if !ok {
			continue
		}
		if _, ok := def["attributes"]; !ok {
			return Legacy
		}
	}
	return Current
}

// Upgrade rewrites a decoded JSON document tree of version from into the
// canonical shape in place. Missing parent becomes null and missing
// attributes an empty list; existing values are kept.
func Upgrade(tree map[string]interface{}, from Version) error {
	caps, err := Capabilities(from)
	if err != nil {
		return err
	}
	if caps.Full() {
		return nil
	}
	defs, _ := tree["defs"].([]interface{})
	for _, item := range defs {
		def, ok := item.(map[string]interface{})
		if !ok {
			continue
		}
		if _, ok := def["parent"]; !ok && !caps.Parent {
			def["parent"] = nil
		}
		if _, ok := def["attributes"]; !ok && !caps.Attributes {
			def["attributes"] = []interface{}{}
		}
	}
	return nil
}
