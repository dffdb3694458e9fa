package variant

import (
	"encoding/json"
	"testing"
)

func TestTableFor(t *testing.T) {
	for _, postType := range PostTypes() {
		table, ok := TableFor(postType)
		if !ok {
			t.Fatalf("expected table for %q", postType)
		}
		if table.PostType != postType {
			t.Fatalf("expected %q, got %q", postType, table.PostType)
		}
		if len(table.Defaults) == 0 {
			t.Fatalf("expected defaults for %q", postType)
		}
		for axis := range table.Defaults {
			if _, ok := table.Axis(axis); !ok {
				t.Fatalf("default names unknown axis %q", axis)
			}
		}
	}
	if _, ok := TableFor("carousel"); ok {
		t.Fatal("expected no table for carousel")
	}
}

func TestDefaultsNameValidOptions(t *testing.T) {
	for _, postType := range PostTypes() {
		table, _ := TableFor(postType)
		for axisName, option := range table.Defaults {
			axis, _ := table.Axis(axisName)
			if _, ok := axis.Options[option]; !ok {
				t.Fatalf("%s default %s=%s names unknown option", postType, axisName, option)
			}
		}
	}
}

func TestCompoundConditionsNameValidOptions(t *testing.T) {
	for _, postType := range PostTypes() {
		table, _ := TableFor(postType)
		for _, compound := range table.Compounds {
			for axisName, option := range compound.Conditions {
				axis, ok := table.Axis(axisName)
				if !ok {
					t.Fatalf("%s compound names unknown axis %q", postType, axisName)
				}
				if _, ok := axis.Options[option]; !ok {
					t.Fatalf("%s compound names unknown option %s=%s", postType, axisName, option)
				}
			}
		}
	}
}

func TestRangeJSON(t *testing.T) {
	data, err := json.Marshal(Range{300, 800})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(data) != "[300,800]" {
		t.Fatalf("expected [300,800], got %s", data)
	}
	var r Range
	if err := json.Unmarshal(data, &r); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if r != (Range{300, 800}) {
		t.Fatalf("expected round trip, got %+v", r)
	}
}

func TestTextAxisCatalog(t *testing.T) {
	axis, ok := textTable.Axis("style")
	if !ok {
		t.Fatal("expected style axis")
	}
	for _, option := range []string{"story", "insight", "question", "listicle", "hot_take"} {
		if _, ok := axis.Options[option]; !ok {
			t.Fatalf("expected style option %q", option)
		}
	}
	if _, ok := textTable.Axis("purpose"); ok {
		t.Fatal("expected text table not to declare poll axes")
	}
}
