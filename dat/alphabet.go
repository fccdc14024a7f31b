package dat

// Alphabet maps BMP code units to dense symbol IDs with a two-level page
// table. Top[hi] is a 1-based page index or 0 for an absent page; Pages is a
// flat array of 256 entries per page. Indic scripts occupy few pages, so a
// word list touching Latin, punctuation and one Brahmic block needs ~2 KB.
type Alphabet struct {
	Top   [256]uint16
	Pages []uint16
}

// Dense returns the symbol ID for a BMP code unit, or 0 if absent.
func (a *Alphabet) Dense(bmp uint16) uint16 {
	page := a.Top[bmp>>8]
	if page == 0 {
		return 0
	}
	return a.Pages[int(page-1)<<8+int(bmp&0xFF)]
}

// NumPages returns the number of allocated pages.
func (a *Alphabet) NumPages() int { return len(a.Pages) >> 8 }

// set maps bmp to dense, allocating its page on demand.
func (a *Alphabet) set(bmp uint16, dense uint16) {
	hi := bmp >> 8
	page := a.Top[hi]
	if page == 0 {
		if dense == 0 {
			return
		}
		a.Pages = append(a.Pages, make([]uint16, 256)...)
		page = uint16(len(a.Pages) >> 8)
		a.Top[hi] = page
	}
	a.Pages[int(page-1)<<8+int(bmp&0xFF)] = dense
}
