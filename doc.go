// Package furnilytics is a Go client for the Furnilytics dataset catalog
// API.
//
// The client issues plain GET requests, retries transient failures
// (429, 500, 502, 503, 504) with exponential backoff, and maps HTTP status
// codes onto a closed error taxonomy (see ErrorKind). Tabular endpoints are
// normalized into a Table regardless of whether the server returns a bare
// row array or a {"data": [...]} wrapper.
//
// An API key is optional. Public datasets work anonymously; paid/pro
// datasets require FURNILYTICS_API_KEY or WithAPIKey.
//
//	cli := furnilytics.New()
//
//	catalog, err := cli.Datasets(ctx)
//	if err != nil {
//	    if furnilytics.IsAuth(err) {
//	        // missing or invalid key
//	    }
//	    return err
//	}
//	fmt.Println(catalog)
//
// Diagnostic metadata (status, ETag, Cache-Control, Retry-After,
// X-RateLimit-Reset) is returned with each call — on the Table, from
// GetJSON, or on the *Error — rather than stored on the client, so a
// single Client can be shared across goroutines.
package furnilytics
