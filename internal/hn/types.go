package hn

// HiringThread is a candidate "Who is hiring?" story returned by the search
// API. It only lives long enough for its ID to be pulled out.
type HiringThread struct {
	ID     int
	Title  string
	Points int
}

// RawComment mirrors the item API payload for a thread comment.
type RawComment struct {
	ID      int    `json:"id"`
	By      string `json:"by"`
	Time    int64  `json:"time"`
	Text    string `json:"text"`
	Deleted bool   `json:"deleted"`
	Dead    bool   `json:"dead"`
	Kids    []int  `json:"kids"` // nested replies, not descended into
}

type searchResponse struct {
	Hits []searchHit `json:"hits"`
}

type searchHit struct {
	ObjectID string `json:"objectID"`
	Title    string `json:"title"`
	Points   int    `json:"points"`
}
