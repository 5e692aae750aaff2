package model

// Book is the single catalog entity, stored as one document per record.
// Stock never goes below zero: the only mutation path that decrements it is
// the purchase update, whose filter guards stock > 0 inside the store.
type Book struct {
	ID          string  `bson:"_id" json:"id"`
	Title       string  `bson:"title" json:"title"`
	Author      string  `bson:"author" json:"author"`
	Description string  `bson:"description" json:"description"`
	Price       float64 `bson:"price" json:"price"`
	Stock       int     `bson:"stock" json:"stock"`
	SoldCount   int     `bson:"sold_count" json:"sold_count"`
}

// AuthorCount is one row of the top-authors aggregate:
// a distinct author and how many catalog records they account for.
type AuthorCount struct {
	Author string `bson:"_id" json:"author"`
	Count  int64  `bson:"count" json:"count"`
}

// BookPatch carries a partial update. Nil fields are left untouched;
// the repository only writes the fields that are set.
type BookPatch struct {
	Title       *string
	Author      *string
	Description *string
	Price       *float64
	Stock       *int
	SoldCount   *int
}

// IsEmpty reports whether the patch would write nothing.
func (p BookPatch) IsEmpty() bool {
	return p.Title == nil && p.Author == nil && p.Description == nil &&
		p.Price == nil && p.Stock == nil && p.SoldCount == nil
}

// SearchQuery is the repository-level search filter. Zero values mean
// "no constraint"; price bounds are inclusive.
type SearchQuery struct {
	Title    string
	Author   string
	MinPrice *float64
	MaxPrice *float64
}
