package combineur

import (
	"encoding/json"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"os"

	"github.com/pkg/errors"
)

// ExtJar is a cookie jar that remembers every set cookie per URL so a
// session can be persisted across runs.
type ExtJar struct {
	jar     *cookiejar.Jar
	cookies map[string][]*http.Cookie
}

func NewJar() *ExtJar {
	// cookiejar.New never fails with nil options
	jar, _ := cookiejar.New(nil)

	return &ExtJar{jar: jar, cookies: make(map[string][]*http.Cookie)}
}

func (j *ExtJar) Cookies(u *url.URL) []*http.Cookie {
	return j.jar.Cookies(u)
}

func (j *ExtJar) SetCookies(u *url.URL, cookies []*http.Cookie) {
	j.cookies[u.String()] = cookies
	j.jar.SetCookies(u, cookies)
}

func (j *ExtJar) Save(filename string) error {
	data, err := json.Marshal(j.cookies)

	if err != nil {
		return errors.Wrap(err, "encoding cookies")
	}

	return os.WriteFile(filename, data, 0600)
}

func (j *ExtJar) Load(filename string) error {
	data, err := os.ReadFile(filename)

	if err != nil {
		return err
	}

	var allCookies map[string][]*http.Cookie

	if err = json.Unmarshal(data, &allCookies); err != nil {
		return errors.Wrapf(err, "decoding %s", filename)
	}

	for urlString, cookies := range allCookies {
		u, err := url.Parse(urlString)

		if err != nil {
			return errors.Wrapf(err, "bad cookie url %s", urlString)
		}

		j.SetCookies(u, cookies)
	}

	return nil
}
