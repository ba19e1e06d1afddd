package domain

// Post is a single blog entry. Date is deliberately a free-text
// timestamp string, not a time.Time: ordering and display both operate
// on the raw string.
type Post struct {
	Title  string `bson:"title"`
	Body   string `bson:"body"`
	Author string `bson:"author"`
	Date   string `bson:"date"`
}

// PostWithID carries the hex form of the store-assigned identifier.
// The identifier is informational only and never drives authorization.
type PostWithID struct {
	ID     string `bson:"-"`
	Title  string `bson:"title"`
	Body   string `bson:"body"`
	Author string `bson:"author"`
	Date   string `bson:"date"`
}
