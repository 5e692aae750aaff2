package model

import (
	bookModel "bookstore-catalog/internal/domains/book/model"
)

// TotalBooksResponse reports the current record count.
type TotalBooksResponse struct {
	TotalBooks int64 `json:"total_books"`
}

// TopSellingResponse lists records by sold_count descending.
type TopSellingResponse struct {
	Books []bookModel.Book `json:"books"`
}

// TopAuthorsResponse lists authors by number of catalog records.
type TopAuthorsResponse struct {
	Authors []bookModel.AuthorCount `json:"authors"`
}
