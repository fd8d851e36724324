package models

import (
	"encoding/json"
	"reflect"
	"testing"
)

func TestFlexStringUnmarshal(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want FlexString
	}{
		{"string", `"40"`, "40"},
		{"integer", `40`, "40"},
		{"float", `15000.50`, "15000.50"},
		{"bool", `true`, "true"},
		{"null", `null`, ""},
		{"blank", `"  "`, "  "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got FlexString
			if err := json.Unmarshal([]byte(tt.in), &got); err != nil {
				t.Fatalf("Unmarshal(%s) returned error: %v", tt.in, err)
			}
			if got != tt.want {
				t.Fatalf("Unmarshal(%s) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}

	var bad FlexString
	if err := json.Unmarshal([]byte(`{"a":1}`), &bad); err == nil {
		t.Fatal("expected error for object value")
	}
}

func TestFlexStringHelpers(t *testing.T) {
	if !FlexString(" ").IsEmpty() {
		t.Fatal("expected blank value to be empty")
	}
	if n, ok := FlexString(" 42 ").Int(); !ok || n != 42 {
		t.Fatalf("Int() = %d, %v", n, ok)
	}
	if f, ok := FlexString("12,500.75").Float(); !ok || f != 12500.75 {
		t.Fatalf("Float() = %v, %v", f, ok)
	}
	for _, v := range []FlexString{"yes", "Yes", "TRUE", "1"} {
		if !v.Truthy() {
			t.Fatalf("expected %q to be truthy", v)
		}
	}
	if FlexString("no").Truthy() {
		t.Fatal("expected no to be falsy")
	}
}

func TestResidentMissingFields(t *testing.T) {
	var r Resident
	if got := len(r.MissingFields()); got != len(ResidentFields) {
		t.Fatalf("expected all %d fields missing, got %d", len(ResidentFields), got)
	}

	for _, f := range ResidentFields {
		f.Set(&r, "x")
	}
	if missing := r.MissingFields(); len(missing) != 0 {
		t.Fatalf("expected no missing fields, got %v", missing)
	}

	r.Purok = " "
	if missing := r.MissingFields(); !reflect.DeepEqual(missing, []string{"purok"}) {
		t.Fatalf("expected [purok], got %v", missing)
	}
}

func TestResidentProvidedUpdates(t *testing.T) {
	r := Resident{ID: "R1", Age: "40", Purok: ""}
	got := r.ProvidedUpdates()
	want := map[string]interface{}{"age": "40"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("ProvidedUpdates() = %v, want %v", got, want)
	}
}

func TestResidentColumn(t *testing.T) {
	if col, ok := ResidentColumn("civilStatus"); !ok || col != "civil_status" {
		t.Fatalf("ResidentColumn(civilStatus) = %q, %v", col, ok)
	}
	if _, ok := ResidentColumn("password"); ok {
		t.Fatal("expected unknown field to be rejected")
	}
}

func TestResidentSummaryOmitsContactFields(t *testing.T) {
	r := Resident{ID: "R1", Firstname: "Ana", Email: "ana@example.com", Pnumber: "0917", MonthlyIncome: "9000"}
	data, err := json.Marshal(r.Summary())
	if err != nil {
		t.Fatalf("Marshal returned error: %v", err)
	}

	var out map[string]interface{}
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("Unmarshal returned error: %v", err)
	}
	for _, key := range []string{"email", "pnumber", "monthlyIncome"} {
		if _, ok := out[key]; ok {
			t.Fatalf("summary leaked %s", key)
		}
	}
	if out["firstname"] != "Ana" {
		t.Fatalf("expected firstname Ana, got %v", out["firstname"])
	}
}

func TestNormalizeRole(t *testing.T) {
	if NormalizeRole("admin") != RoleAdmin {
		t.Fatal("admin should stay admin")
	}
	for _, in := range []string{"", "staff", "Admin", "root"} {
		if NormalizeRole(in) != RoleStaff {
			t.Fatalf("NormalizeRole(%q) should default to staff", in)
		}
	}
}
