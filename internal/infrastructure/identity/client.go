package identity

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// Client talks to the hosted identity provider over its REST surface.
type Client struct {
	BaseURL string
	APIKey  string
	HTTP    *http.Client
}

type credentialReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type credentialResp struct {
	SubjectID string `json:"subjectId"`
	ErrCode   int    `json:"errCode"`
	ErrMsg    string `json:"errMsg"`
}

func (c *Client) SignUp(email, password string) (string, error) {
	return c.post("/v1/accounts:signUp", email, password)
}

func (c *Client) SignIn(email, password string) (string, error) {
	return c.post("/v1/accounts:signInWithPassword", email, password)
}

func (c *Client) post(path, email, password string) (string, error) {
	hc := c.HTTP
	if hc == nil {
		hc = &http.Client{Timeout: 8 * time.Second}
	}
	body, _ := json.Marshal(credentialReq{Email: email, Password: password})
	url := c.BaseURL + path
	if c.APIKey != "" {
		url += "?key=" + c.APIKey
	}
	req, err := http.NewRequest(http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := hc.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()
	var out credentialResp
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		if resp.StatusCode != http.StatusOK {
			return "", fmt.Errorf("identity http %d", resp.StatusCode)
		}
		return "", err
	}
	if resp.StatusCode != http.StatusOK || out.ErrCode != 0 || out.SubjectID == "" {
		return "", fmt.Errorf("identity http %d: %d %s", resp.StatusCode, out.ErrCode, out.ErrMsg)
	}
	return out.SubjectID, nil
}
