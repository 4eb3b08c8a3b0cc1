// Package sdk provides an embedded Go client for the catsearch catalog
// resolver. It wires the resolver directly over a Redis or Badger store, so
// batch tooling can run searches without going through the HTTP API.
//
//	client, err := sdk.New(ctx, sdk.WithRedis("localhost:6379", ""))
//	if err != nil { ... }
//	defer client.Close()
//
//	res, err := client.SmartSearch(ctx, "honda city vdi",
//	    sdk.WithSort(sdk.SortPriceDesc),
//	    sdk.WithPriceRange(500, 25000),
//	)
package sdk
