package order

import "testing"

func validData() Data {
	return Data{
		CustomerName: "Jan",
		KebabType:    "Doner",
		Size:         "L",
		Sauce:        "garlic",
		MeatType:     "chicken",
	}
}

func TestValidate(t *testing.T) {
	if err := validData().Validate(); err != nil {
		t.Fatalf("valid data rejected: %v", err)
	}
	// Date is optional.
	d := validData()
	d.Date = ""
	if err := d.Validate(); err != nil {
		t.Fatalf("missing date rejected: %v", err)
	}
	d = validData()
	d.Sauce = ""
	if err := d.Validate(); err == nil {
		t.Fatal("missing sauce accepted")
	}
}

func TestNewAssignsUniqueIDs(t *testing.T) {
	a := New(validData())
	b := New(validData())
	if a.ID == "" {
		t.Fatal("empty id")
	}
	if a.ID == b.ID {
		t.Fatalf("ids collide: %s", a.ID)
	}
	if a.CustomerName != "Jan" || a.KebabType != "Doner" {
		t.Fatalf("data not carried over: %+v", a)
	}
}
