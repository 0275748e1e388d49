package importer

import "testing"

func TestParsePricesSimpleFormat(t *testing.T) {
	raw := "Jon Doe 12\n" +
		"Mads Bech Sørensen 8,5 mio.\n" +
		"No Price Here\n"

	prices := ParsePrices(raw)

	if len(prices) != 2 {
		t.Fatalf("got %d prices, want 2", len(prices))
	}
	if prices[0].Name != "Jon Doe" || prices[0].Price != 12 {
		t.Fatalf("first = %q/%v", prices[0].Name, prices[0].Price)
	}
	if prices[1].Name != "Mads Bech Sørensen" || prices[1].Price != 8.5 {
		t.Fatalf("second = %q/%v", prices[1].Name, prices[1].Price)
	}
}

func TestParsePricesTabbedFormat(t *testing.T) {
	raw := "Franculino Dju FC Midtjylland · Angreb Info\t1\t12.000.000\t+0\n" +
		"Jon Doe FC Test · Midtbane\t2\t5.500.000\t-100.000\n"

	prices := ParsePrices(raw)

	if len(prices) != 2 {
		t.Fatalf("got %d prices, want 2", len(prices))
	}
	if prices[0].Name != "Franculino Dju" || prices[0].Price != 12.0 {
		t.Fatalf("first = %q/%v", prices[0].Name, prices[0].Price)
	}
	// "FC Test" is not a known club, so the suffix stays on the name.
	if prices[1].Name != "Jon Doe FC Test" || prices[1].Price != 5.5 {
		t.Fatalf("second = %q/%v", prices[1].Name, prices[1].Price)
	}
}

func TestParsePricesDropsZeroAndShortNames(t *testing.T) {
	raw := "X 5\n" +
		"Jon Doe 0\n"

	if prices := ParsePrices(raw); len(prices) != 0 {
		t.Fatalf("got %d prices, want 0", len(prices))
	}
}
