/*
Package cache provides RowCache, a record cache layered on the multi-key
container.

A RowCache stores row records (field name -> value) and derives the keys
that address them from the rows themselves. A key type is backed either by
one row field, whose raw value becomes the key, or by several fields whose
normalized values are joined with a connector:

	c, err := cache.New(cache.Config{
	    Types: []cache.TypeSpec{
	        {Name: "stock_code"},
	        {Name: "code_time", Fields: []string{"stock_code", "trade_time"}},
	    },
	    MustTypes:   []string{"stock_code"},
	    DefaultType: "stock_code",
	})

	err = c.Upsert(cache.Row{
	    "stock_code": "AAPL",
	    "trade_time": time.Date(2023, 9, 1, 12, 0, 0, 0, time.UTC),
	    "price":      150.0,
	})

	// Addressable by the raw field value...
	row := c.Fetch("AAPL")
	// ...and by the composite key "AAPL__2023-09-01-12-00-00".
	row = c.FetchBy("code_time", "AAPL__2023-09-01-12-00-00")

Upserting a row whose default-type key already exists merges the row into
the cached record instead of replacing it. Fetch and Query hand out copies;
mutating a fetched row does not change the cache.

Must types are the key types every row is required to produce; types outside
the must list are optional and silently skipped for rows that cannot fill
them. The default type must be a must type.
*/
package cache
