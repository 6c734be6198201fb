// Package glassdex provides an embedded Go client for the glassdex catalog
// query engine.
//
// The client loads a catalog export (from a file or from Valkey/Redis),
// keeps it in memory and answers filtered, searched and sorted queries
// without a network hop.
//
//	client, _ := glassdex.New(ctx, glassdex.WithFile("data/catalog.json"))
//	defer client.Close()
//
//	page, _ := client.Search(ctx, glassdex.Query{
//	    Text:    "cobalt",
//	    Classes: []string{"104"},
//	    Sort:    glassdex.SortRelevance,
//	})
//
// Manufacturer visibility can be toggled at runtime and, with a store
// configured, survives restarts:
//
//	_ = client.Manufacturers().Disable(ctx, "OC")
package glassdex
