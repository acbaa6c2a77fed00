package pagination

import "testing"

func TestWindow(t *testing.T) {
	items := []int{1, 2, 3, 4, 5}

	t.Run("first_page", func(t *testing.T) {
		page := Window(items, PageRequest{Page: 1, PageSize: 2})
		if len(page.Data) != 2 || page.Data[0] != 1 || page.Data[1] != 2 {
			t.Errorf("unexpected first page: %v", page.Data)
		}
		if page.TotalItems != 5 || page.TotalPages != 3 {
			t.Errorf("unexpected totals: %d items, %d pages", page.TotalItems, page.TotalPages)
		}
	})

	t.Run("last_partial_page", func(t *testing.T) {
		page := Window(items, PageRequest{Page: 3, PageSize: 2})
		if len(page.Data) != 1 || page.Data[0] != 5 {
			t.Errorf("unexpected last page: %v", page.Data)
		}
	})

	t.Run("past_end_is_empty", func(t *testing.T) {
		page := Window(items, PageRequest{Page: 10, PageSize: 2})
		if len(page.Data) != 0 {
			t.Errorf("expected an empty page past the end, got %v", page.Data)
		}
	})

	t.Run("zero_request_gets_defaults", func(t *testing.T) {
		page := Window(items, PageRequest{})
		if page.Page != 1 || page.PageSize != 20 {
			t.Errorf("expected defaults, got page %d size %d", page.Page, page.PageSize)
		}
		if len(page.Data) != 5 {
			t.Errorf("expected all items on the default page, got %d", len(page.Data))
		}
	})

	t.Run("negative_page_clamps_to_first", func(t *testing.T) {
		page := Window(items, PageRequest{Page: -1, PageSize: 2})
		if page.Page != 1 {
			t.Errorf("expected page clamped to 1, got %d", page.Page)
		}
		if len(page.Data) != 2 || page.Data[0] != 1 {
			t.Errorf("expected the first page, got %v", page.Data)
		}
	})

	t.Run("negative_page_size_gets_default", func(t *testing.T) {
		page := Window(items, PageRequest{Page: 1, PageSize: -10})
		if page.PageSize != 20 {
			t.Errorf("expected page size defaulted to 20, got %d", page.PageSize)
		}
		if len(page.Data) != 5 {
			t.Errorf("expected all items, got %d", len(page.Data))
		}
		if page.TotalPages != 1 {
			t.Errorf("expected 1 page, got %d", page.TotalPages)
		}
	})
}
