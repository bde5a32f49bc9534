package defillama

import "testing"

func TestEstimateTVLKnownAsset(t *testing.T) {
	if got := EstimateTVL("Bitcoin", "BTC", 1_000_000); got != 500_000 {
		t.Fatalf("bitcoin estimate = %v, want 500000", got)
	}
	if got := EstimateTVL("Some Obscure Coin", "XYZ", 1_000_000); got != 100_000 {
		t.Fatalf("default estimate = %v, want 100000", got)
	}
	if got := EstimateTVL("Bitcoin", "BTC", 0); got != 0 {
		t.Fatalf("zero market cap estimate = %v, want 0", got)
	}
}

func TestEstimateTVLAmbiguousNameIsDeterministic(t *testing.T) {
	// The name matches two table keys; the first in key order wins, on
	// every call.
	want := 1_000_000 * tvlMultipliers["harmony"]
	for i := 0; i < 50; i++ {
		if got := EstimateTVL("Near Wrapped on Harmony", "XNH", 1_000_000); got != want {
			t.Fatalf("estimate = %v, want %v (stable match)", got, want)
		}
	}
}
