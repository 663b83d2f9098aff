package clf

import "testing"

func TestFormatCurrency(t *testing.T) {
	testCases := []struct {
		in   string
		want string
	}{
		{in: "-1234.5", want: "($1,234.50)"},
		{in: "0", want: "$0.00"},
		{in: "1000000", want: "$1,000,000.00"},
		{in: "12.345", want: "$12.35"},
		{in: "-0.001", want: "$0.00"},
		{in: "-0.005", want: "($0.01)"},
		{in: "999.999", want: "$1,000.00"},
		{in: "-7", want: "($7.00)"},
		{in: "92233720368547758.07", want: "$92,233,720,368,547,758.07"},
		{in: "-92233720368547758.08", want: "($92,233,720,368,547,758.08)"},
		{in: "100000000000000000", want: "$100,000,000,000,000,000.00"},
		{in: "-1234567890123456789012.345", want: "($1,234,567,890,123,456,789,012.35)"},
	}
	for _, tc := range testCases {
		t.Run(tc.in, func(t *testing.T) {
			if got := FormatCurrency(D(tc.in)); got != tc.want {
				t.Errorf("FormatCurrency(%s) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestMoneyRounded(t *testing.T) {
	testCases := []struct {
		in   string
		want string
	}{
		{in: "0.125", want: "0.13"},
		{in: "-0.125", want: "-0.13"},
		{in: "2.675", want: "2.68"},
		{in: "1.004", want: "1"},
	}
	for _, tc := range testCases {
		if got := M(D(tc.in), "").Rounded().Decimal(); !got.Equal(D(tc.want)) {
			t.Errorf("M(%s).Rounded() = %s, want %s", tc.in, got, tc.want)
		}
	}
}

func TestMoneyDefaultCurrency(t *testing.T) {
	m := M(10, "")
	if m.Currency() != DefaultCurrency {
		t.Errorf("M(10, \"\").Currency() = %q, want %q", m.Currency(), DefaultCurrency)
	}
	if got := m.Add(M(2.5, "")).Neg().String(); got != "($12.50)" {
		t.Errorf("-(10 + 2.5) = %q, want %q", got, "($12.50)")
	}
}
