package gestor

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// contains http utils to deal with remote services

// quoteTimeout bounds the external quote call. On timeout the call
// behaves exactly like any other provider error.
const quoteTimeout = 10 * time.Second

// newQuoteClient returns the bounded client used for quote lookups.
func newQuoteClient() *http.Client {
	return &http.Client{Timeout: quoteTimeout}
}

// jwget performs an HTTP GET request and unmarshals the JSON response into the provided data structure.
func jwget(client *http.Client, addr string, data interface{}) error {
	resp, err := client.Get(addr)
	if err != nil {
		return err
	}
	if resp.StatusCode != 200 {
		return fmt.Errorf("cannot http GET %v/%v: %v", resp.Request.URL.Host, resp.Request.URL.Path, resp.Status)
	}
	var buf bytes.Buffer
	_, err = io.Copy(&buf, resp.Body)
	if err != nil {
		return err
	}
	resp.Body.Close()
	return json.Unmarshal(buf.Bytes(), data)
}
