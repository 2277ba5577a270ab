package trace

// Listing is the reference implementation shown next to the animation.
// SourceLine values index into it.
var Listing = []string{
	"def comb_sort(arr):",
	"    n = len(arr)",
	"    gap = n",
	"    swapped = True",
	"    while gap != 1 or swapped:",
	"        gap = int(gap / 1.3)",
	"        if gap < 1: gap = 1",
	"        swapped = False",
	"        for i in range(n - gap):",
	"            if arr[i] > arr[i + gap]:",
	"                arr[i], arr[i + gap] = arr[i + gap], arr[i]",
	"                swapped = True",
}

// ListingLanguage names the language of Listing for syntax highlighters.
const ListingLanguage = "python"

const (
	LineDef       = 0
	LineGapShrink = 5
	LineCompare   = 9
	LineSwap      = 10
)

// LineFor returns the listing line a step of the given kind points at.
func LineFor(kind Kind) int {
	switch kind {
	case KindGapUpdate:
		return LineGapShrink
	case KindCompare:
		return LineCompare
	case KindSwap:
		return LineSwap
	default:
		return LineDef
	}
}
