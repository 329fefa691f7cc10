package webcall

import (
	"context"
	"io"

	json "github.com/goccy/go-json"
)

// PostJSON marshals v and issues a POST with content type
// application/json.
//
// Example:
//
//	created, err := webcall.PostJSON(ctx, client, "http://example.com/users",
//	    User{Name: "john"},
//	    func(resp *webcall.Response, body io.Reader) (User, error) {
//	        var u User
//	        err := json.NewDecoder(body).Decode(&u)
//	        return u, err
//	    })
func PostJSON[T any](ctx context.Context, c *Client, rawurl string, v any, handle Handler[T]) (T, error) {
	data, err := json.Marshal(v)
	if err != nil {
		var zero T
		return zero, err
	}
	produce := func(w io.Writer) error {
		_, werr := w.Write(data)
		return werr
	}
	return Post(ctx, c, rawurl, "application/json", produce, handle)
}
