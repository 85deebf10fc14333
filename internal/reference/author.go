package reference

// Author is one contributor to a citation. Order within Citation.Authors is
// significant and preserved by every export format.
type Author struct {
	Given  string `json:"given"`           // Given name(s), used for initials
	Family string `json:"family"`          // Family name
	ORCID  string `json:"orcid,omitempty"` // ORCID iD (NNNN-NNNN-NNNN-NNNN), rendered verbatim
}

// HasORCID reports whether the author carries an ORCID iD.
func (a Author) HasORCID() bool {
	return a.ORCID != ""
}
