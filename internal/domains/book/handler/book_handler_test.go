package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bookstore-catalog/internal/domains/book/model"
)

// fakeService stubs the service layer with per-test function fields.
type fakeService struct {
	createFn   func(ctx context.Context, req model.CreateBookRequest) (*model.Book, error)
	getFn      func(ctx context.Context, id string) (*model.Book, error)
	updateFn   func(ctx context.Context, id string, req model.UpdateBookRequest) (*model.Book, error)
	deleteFn   func(ctx context.Context, id string) error
	listFn     func(ctx context.Context) ([]model.Book, error)
	searchFn   func(ctx context.Context, req model.SearchBooksRequest) ([]model.Book, error)
	purchaseFn func(ctx context.Context, id string) (*model.Book, error)
}

func (f *fakeService) CreateBook(ctx context.Context, req model.CreateBookRequest) (*model.Book, error) {
	return f.createFn(ctx, req)
}

func (f *fakeService) GetBook(ctx context.Context, id string) (*model.Book, error) {
	return f.getFn(ctx, id)
}

func (f *fakeService) UpdateBook(ctx context.Context, id string, req model.UpdateBookRequest) (*model.Book, error) {
	return f.updateFn(ctx, id, req)
}

func (f *fakeService) DeleteBook(ctx context.Context, id string) error {
	return f.deleteFn(ctx, id)
}

func (f *fakeService) ListBooks(ctx context.Context) ([]model.Book, error) {
	return f.listFn(ctx)
}

func (f *fakeService) SearchBooks(ctx context.Context, req model.SearchBooksRequest) ([]model.Book, error) {
	return f.searchFn(ctx, req)
}

func (f *fakeService) Purchase(ctx context.Context, id string) (*model.Book, error) {
	return f.purchaseFn(ctx, id)
}

func newTestRouter(svc *fakeService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewHandler(svc)

	router := gin.New()
	v1 := router.Group("/api/v1")
	books := v1.Group("/books")
	books.GET("", h.ListBooks)
	books.POST("", h.CreateBook)
	books.GET("/:id", h.GetBook)
	books.PUT("/:id", h.UpdateBook)
	books.DELETE("/:id", h.DeleteBook)
	books.POST("/:id/buy", h.PurchaseBook)
	v1.GET("/search", h.SearchBooks)

	return router
}

func perform(router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		r.Header.Set("Content-Type", "application/json")
	}
	router.ServeHTTP(w, r)
	return w
}

var sample = model.Book{
	ID:          "b1",
	Title:       "A",
	Author:      "X",
	Description: "desc",
	Price:       9.99,
	Stock:       1,
	SoldCount:   0,
}

func TestHandler_CreateBook(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		svc := &fakeService{
			createFn: func(_ context.Context, req model.CreateBookRequest) (*model.Book, error) {
				book := sample
				book.Title = req.Title
				return &book, nil
			},
		}
		router := newTestRouter(svc)

		w := perform(router, http.MethodPost, "/api/v1/books", `{"title":"A","author":"X","price":9.99,"stock":1}`)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), "Book added successfully")
	})

	t.Run("malformed body", func(t *testing.T) {
		router := newTestRouter(&fakeService{})

		w := perform(router, http.MethodPost, "/api/v1/books", `{"title":`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("validation failure", func(t *testing.T) {
		svc := &fakeService{
			createFn: func(_ context.Context, req model.CreateBookRequest) (*model.Book, error) {
				return nil, req.Validate()
			},
		}
		router := newTestRouter(svc)

		w := perform(router, http.MethodPost, "/api/v1/books", `{"title":"","author":"X","price":-1}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "VALIDATION_ERROR")
	})

	t.Run("duplicate id", func(t *testing.T) {
		svc := &fakeService{
			createFn: func(_ context.Context, _ model.CreateBookRequest) (*model.Book, error) {
				return nil, model.ErrBookAlreadyExists
			},
		}
		router := newTestRouter(svc)

		w := perform(router, http.MethodPost, "/api/v1/books", `{"id":"b1","title":"A","author":"X"}`)

		assert.Equal(t, http.StatusConflict, w.Code)
	})
}

func TestHandler_GetBook(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		svc := &fakeService{
			getFn: func(_ context.Context, id string) (*model.Book, error) {
				require.Equal(t, "b1", id)
				return &sample, nil
			},
		}
		router := newTestRouter(svc)

		w := perform(router, http.MethodGet, "/api/v1/books/b1", "")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"id":"b1"`)
	})

	t.Run("not found", func(t *testing.T) {
		svc := &fakeService{
			getFn: func(_ context.Context, _ string) (*model.Book, error) {
				return nil, model.ErrBookNotFound
			},
		}
		router := newTestRouter(svc)

		w := perform(router, http.MethodGet, "/api/v1/books/missing", "")

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestHandler_UpdateBook(t *testing.T) {
	t.Run("partial body reaches the service as pointers", func(t *testing.T) {
		svc := &fakeService{
			updateFn: func(_ context.Context, id string, req model.UpdateBookRequest) (*model.Book, error) {
				require.Equal(t, "b1", id)
				require.NotNil(t, req.Stock)
				require.Nil(t, req.Price)
				book := sample
				book.Stock = *req.Stock
				return &book, nil
			},
		}
		router := newTestRouter(svc)

		w := perform(router, http.MethodPut, "/api/v1/books/b1", `{"stock":3}`)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"stock":3`)
	})

	t.Run("empty patch", func(t *testing.T) {
		svc := &fakeService{
			updateFn: func(_ context.Context, _ string, _ model.UpdateBookRequest) (*model.Book, error) {
				return nil, model.ErrEmptyUpdate
			},
		}
		router := newTestRouter(svc)

		w := perform(router, http.MethodPut, "/api/v1/books/b1", `{}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("not found", func(t *testing.T) {
		svc := &fakeService{
			updateFn: func(_ context.Context, _ string, _ model.UpdateBookRequest) (*model.Book, error) {
				return nil, model.ErrBookNotFound
			},
		}
		router := newTestRouter(svc)

		w := perform(router, http.MethodPut, "/api/v1/books/missing", `{"stock":3}`)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestHandler_DeleteBook(t *testing.T) {
	t.Run("deleted", func(t *testing.T) {
		svc := &fakeService{deleteFn: func(_ context.Context, _ string) error { return nil }}
		router := newTestRouter(svc)

		w := perform(router, http.MethodDelete, "/api/v1/books/b1", "")

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("not found", func(t *testing.T) {
		svc := &fakeService{deleteFn: func(_ context.Context, _ string) error { return model.ErrBookNotFound }}
		router := newTestRouter(svc)

		w := perform(router, http.MethodDelete, "/api/v1/books/missing", "")

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestHandler_ListBooks(t *testing.T) {
	svc := &fakeService{
		listFn: func(_ context.Context) ([]model.Book, error) {
			return []model.Book{sample}, nil
		},
	}
	router := newTestRouter(svc)

	w := perform(router, http.MethodGet, "/api/v1/books", "")

	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Meta struct {
			Total int `json:"total"`
		} `json:"meta"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 1, resp.Meta.Total)
}

func TestHandler_SearchBooks(t *testing.T) {
	t.Run("query params reach the service", func(t *testing.T) {
		svc := &fakeService{
			searchFn: func(_ context.Context, req model.SearchBooksRequest) ([]model.Book, error) {
				assert.Equal(t, "go", req.Title)
				require.NotNil(t, req.MinPrice)
				require.NotNil(t, req.MaxPrice)
				assert.Equal(t, 10.0, *req.MinPrice)
				assert.Equal(t, 20.0, *req.MaxPrice)
				return []model.Book{sample}, nil
			},
		}
		router := newTestRouter(svc)

		w := perform(router, http.MethodGet, "/api/v1/search?title=go&min_price=10&max_price=20", "")

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("non-numeric price", func(t *testing.T) {
		router := newTestRouter(&fakeService{})

		w := perform(router, http.MethodGet, "/api/v1/search?min_price=abc", "")

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("inverted range", func(t *testing.T) {
		svc := &fakeService{
			searchFn: func(_ context.Context, _ model.SearchBooksRequest) ([]model.Book, error) {
				return nil, model.ErrInvalidPriceRange
			},
		}
		router := newTestRouter(svc)

		w := perform(router, http.MethodGet, "/api/v1/search?min_price=20&max_price=10", "")

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestHandler_PurchaseBook(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc := &fakeService{
			purchaseFn: func(_ context.Context, id string) (*model.Book, error) {
				require.Equal(t, "b1", id)
				book := sample
				book.Stock = 0
				book.SoldCount = 1
				return &book, nil
			},
		}
		router := newTestRouter(svc)

		w := perform(router, http.MethodPost, "/api/v1/books/b1/buy", "")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"sold_count":1`)
	})

	t.Run("out of stock", func(t *testing.T) {
		svc := &fakeService{
			purchaseFn: func(_ context.Context, _ string) (*model.Book, error) {
				return nil, model.ErrOutOfStock
			},
		}
		router := newTestRouter(svc)

		w := perform(router, http.MethodPost, "/api/v1/books/b1/buy", "")

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "OUT_OF_STOCK")
	})

	t.Run("not found", func(t *testing.T) {
		svc := &fakeService{
			purchaseFn: func(_ context.Context, _ string) (*model.Book, error) {
				return nil, model.ErrBookNotFound
			},
		}
		router := newTestRouter(svc)

		w := perform(router, http.MethodPost, "/api/v1/books/missing/buy", "")

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("store failure", func(t *testing.T) {
		svc := &fakeService{
			purchaseFn: func(_ context.Context, _ string) (*model.Book, error) {
				return nil, context.DeadlineExceeded
			},
		}
		router := newTestRouter(svc)

		w := perform(router, http.MethodPost, "/api/v1/books/b1/buy", "")

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}
