package format

import "testing"

func TestFormValues(t *testing.T) {
	type Meta struct {
		Royalty int64 `form:"royalty"`
	}
	type asset struct {
		Name  string `form:"asset[name]"`
		Meta  *Meta  `form:"asset[meta]"`
		Empty string `form:"empty"`
	}

	type testCase struct {
		a        asset
		expected map[string][]string
	}

	tests := []testCase{
		{
			a: asset{Name: "nebula", Meta: &Meta{Royalty: 10}},
			expected: map[string][]string{
				"asset[name]":          {"nebula"},
				"asset[meta][royalty]": {"10"},
			},
		},
		{
			a: asset{Name: "nebula", Meta: &Meta{Royalty: 10}, Empty: "notempty"},
			expected: map[string][]string{
				"asset[name]":          {"nebula"},
				"asset[meta][royalty]": {"10"},
				"empty":                {"notempty"},
			},
		},
	}
	for _, test := range tests {
		values := FormValues(&test.a)

		if len(values) != len(test.expected) {
			t.Fatalf("invalid length: %+v", values)
		}

		for k, v := range test.expected {
			realVal, ok := values[k]
			if !ok {
				t.Errorf("missing key: %+v", k)
			}

			if len(realVal) != 1 {
				t.Errorf("more than one element in form.Values")
			}

			if realVal[0] != v[0] {
				t.Errorf("expected %+v, got %+v", v[0], realVal[0])
			}
		}
	}
}
