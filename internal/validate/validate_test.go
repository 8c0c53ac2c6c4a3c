package validate

import "testing"

func TestValidate_AllPass(t *testing.T) {
	rs := RuleSet{
		"name":  {Required("Name")},
		"price": {Required("Price"), Number("Price"), Min("Price", 0)},
	}
	res := rs.Validate(map[string]string{"name": "Mug", "price": "9.90"})
	if !res.OK {
		t.Fatalf("expected pass, got errors %v", res.Errors)
	}
	if len(res.Errors) != 0 {
		t.Errorf("Errors not empty on success: %v", res.Errors)
	}
}

func TestValidate_FirstFailureWins(t *testing.T) {
	rs := RuleSet{
		"price": {Required("Price"), Number("Price")},
	}
	res := rs.Validate(map[string]string{"price": "  "})
	if res.OK {
		t.Fatal("expected failure")
	}
	if got := res.Errors["price"]; got != "Price is required" {
		t.Errorf("got %q, want the required message first", got)
	}
}

func TestValidate_MissingFieldCheckedAsEmpty(t *testing.T) {
	rs := RuleSet{"name": {Required("Name")}}
	res := rs.Validate(map[string]string{})
	if res.OK {
		t.Error("absent field should fail Required")
	}
}

func TestRules(t *testing.T) {
	cases := []struct {
		name string
		rule Rule
		in   string
		fail bool
	}{
		{"required rejects blank", Required("X"), "", true},
		{"required rejects whitespace", Required("X"), "   ", true},
		{"required accepts text", Required("X"), "ok", false},
		{"number accepts float", Number("X"), "12.5", false},
		{"number accepts padded", Number("X"), " 7 ", false},
		{"number rejects text", Number("X"), "abc", true},
		{"number skips empty", Number("X"), "", false},
		{"min rejects below", Min("X", 1), "0.5", true},
		{"min accepts equal", Min("X", 1), "1", false},
		{"min skips non-numeric", Min("X", 1), "abc", false},
		{"oneof accepts member", OneOf("X", "pending", "paid"), "paid", false},
		{"oneof rejects other", OneOf("X", "pending", "paid"), "void", true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			msg := tc.rule(tc.in)
			if tc.fail && msg == "" {
				t.Errorf("expected failure for %q", tc.in)
			}
			if !tc.fail && msg != "" {
				t.Errorf("unexpected failure for %q: %s", tc.in, msg)
			}
		})
	}
}
