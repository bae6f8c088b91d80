package combineur

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"strings"
	"unicode/utf8"

	"github.com/pkg/errors"
)

type Request struct {
	RequestHeader  *http.Header
	ResponseHeader *http.Header
	Data           *[]byte
	Payload        *[]byte
	Url            *string
	Method         string
}

type WebClient struct {
	client    *http.Client
	jar       *ExtJar
	userAgent string
}

func NewClient() *WebClient {
	jar := NewJar()
	return &WebClient{
		client: &http.Client{
			Jar: jar,
		},
		jar:       jar,
		userAgent: "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/129.0.0.0 Safari/537.36",
	}
}

func (c *WebClient) SetUserAgent(agent string) {
	c.userAgent = agent
}

func (c *WebClient) GetHttpClient() *http.Client {
	return c.client
}

func (c *WebClient) LoadCookies() error {
	return c.jar.Load("cookies.json")
}

func (c *WebClient) PersistCookies() error {
	return c.jar.Save("cookies.json")
}

func (c *WebClient) setup(r *Request) (*http.Request, error) {
	var reader bytes.Reader
	method := r.Method

	if method == "" {
		method = "GET"
	}

	if r.Payload != nil {
		reader = *bytes.NewReader(*r.Payload)
	}

	req, err := http.NewRequestWithContext(context.Background(), method, *r.Url, &reader)

	if err != nil {
		return nil, errors.Wrap(err, "building request")
	}

	req.Header.Set("User-Agent", c.userAgent)
	mergeHeaderFields(r.RequestHeader, &req.Header)

	return req, nil
}

func mergeHeaderFields(srcHeader *http.Header, dstHeader *http.Header) {
	if srcHeader == nil || dstHeader == nil {
		return
	}

	for name, values := range *srcHeader {
		for _, v := range values {
			dstHeader.Add(name, v)
		}
	}
}

func (c *WebClient) Fetch(url string) (*[]byte, error) {
	request := &Request{Url: &url}
	err := c.FetchSync(request)

	return request.Data, err
}

func (c *WebClient) FetchSync(request *Request) error {
	req, err := c.setup(request)

	if err != nil {
		return err
	}

	resp, err := c.client.Do(req)

	if err != nil {
		return errors.Wrapf(err, "fetching %s", *request.Url)
	}

	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)

	if err != nil {
		return errors.Wrapf(err, "reading %s", *request.Url)
	}

	request.Data = &data
	request.ResponseHeader = &resp.Header

	return nil
}

// FetchParse fetches a document and parses it as a single root element.
// Anything but trailing whitespace after the root element is an error.
func (c *WebClient) FetchParse(request *Request) (*Tag, error) {
	if err := c.FetchSync(request); err != nil {
		return nil, err
	}

	result := Element()(string(*request.Data))

	if !result.OK {
		return nil, errors.Errorf("parse failed at %q", truncate(result.Rest, 40))
	}

	if strings.TrimSpace(result.Rest) != "" {
		return nil, errors.Errorf("trailing content after root element: %q", truncate(result.Rest, 40))
	}

	return &result.Value, nil
}

// truncate shortens s to at most max bytes without splitting a rune.
func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}

	for max > 0 && !utf8.RuneStart(s[max]) {
		max--
	}

	return s[:max]
}
