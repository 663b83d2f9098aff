package clf

import (
	"errors"
	"slices"
	"testing"
)

func TestParseAccountID(t *testing.T) {
	testCases := []struct {
		in      string
		want    AccountID
		wantErr bool
	}{
		{in: "7", want: "7"},
		{in: "007", want: "7"},
		{in: " 12 ", want: "12"},
		{in: "0", want: "0"},
		{in: "-1", wantErr: true},
		{in: "+1", wantErr: true},
		{in: "1.5", wantErr: true},
		{in: "checking", wantErr: true},
		{in: "", wantErr: true},
	}
	for _, tc := range testCases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := ParseAccountID(tc.in)
			if tc.wantErr {
				if !errors.Is(err, ErrInvalidInput) {
					t.Fatalf("ParseAccountID(%q) error = %v, want an invalid input error", tc.in, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseAccountID(%q) unexpected error: %v", tc.in, err)
			}
			if got != tc.want {
				t.Errorf("ParseAccountID(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestNewAccount(t *testing.T) {
	testCases := []struct {
		name    string
		id      string
		aname   string
		want    Account
		wantErr bool
	}{
		{name: "simple", id: "1", aname: "Checking", want: Account{ID: "1", Name: "Checking"}},
		{name: "spaces", id: "2", aname: "  Credit Union Savings ", want: Account{ID: "2", Name: "Credit Union Savings"}},
		{name: "empty name", id: "3", aname: "  ", wantErr: true},
		{name: "tab in name", id: "3", aname: "a\tb", wantErr: true},
		{name: "newline in name", id: "3", aname: "a\nb", wantErr: true},
		{name: "bad id", id: "x", aname: "Cash", wantErr: true},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := NewAccount(tc.id, tc.aname)
			if (err != nil) != tc.wantErr {
				t.Fatalf("NewAccount(%q, %q) error = %v, wantErr %v", tc.id, tc.aname, err, tc.wantErr)
			}
			if !tc.wantErr && got != tc.want {
				t.Errorf("NewAccount(%q, %q) = %+v, want %+v", tc.id, tc.aname, got, tc.want)
			}
		})
	}
}

func TestDirectoryLastDefinitionWins(t *testing.T) {
	dir := NewDirectory()
	dir.Define(Account{ID: "10", Name: "Cash"})
	dir.Define(Account{ID: "2", Name: "Savings"})
	dir.Define(Account{ID: "10", Name: "Wallet"})

	if dir.Len() != 2 {
		t.Errorf("Len() = %d, want 2", dir.Len())
	}
	if name, ok := dir.Lookup("10"); !ok || name != "Wallet" {
		t.Errorf("Lookup(10) = %q, %v, want %q, true", name, ok, "Wallet")
	}

	// the redefined account keeps its first position
	got := slices.Collect(dir.Accounts())
	want := []Account{{ID: "10", Name: "Wallet"}, {ID: "2", Name: "Savings"}}
	if !slices.Equal(got, want) {
		t.Errorf("Accounts() = %v, want %v", got, want)
	}

	// while Sorted is numeric, not lexicographic
	sorted := dir.Sorted()
	wantSorted := []Account{{ID: "2", Name: "Savings"}, {ID: "10", Name: "Wallet"}}
	if !slices.Equal(sorted, wantSorted) {
		t.Errorf("Sorted() = %v, want %v", sorted, wantSorted)
	}
}

func TestDirectoryName(t *testing.T) {
	dir := NewDirectory()
	dir.Define(Account{ID: "1", Name: "Checking"})

	if name, err := dir.Name("1"); err != nil || name != "Checking" {
		t.Errorf("Name(1) = %q, %v", name, err)
	}
	if _, err := dir.Name("9"); !errors.Is(err, ErrUnknownAccount) {
		t.Errorf("Name(9) error = %v, want an unknown account error", err)
	}
}
