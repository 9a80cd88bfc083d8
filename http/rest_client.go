package http

// RestClient composes outbound messages for the common verbs and runs
// them through a Client. Like the underlying engine it performs one
// request at a time.
type RestClient struct {
	host   string
	port   string
	client *Client
}

// NewRestClient targets host:port; an empty port means DefaultPort.
func NewRestClient(host, port string) *RestClient {
	return &RestClient{
		host:   host,
		port:   port,
		client: NewClient(0),
	}
}

func (c *RestClient) SetTimeout(seconds int) { c.client.SetTimeout(seconds) }

func (c *RestClient) Response() *Response {
	return c.client.Response()
}

func (c *RestClient) Err() error {
	return c.client.Err()
}

func (c *RestClient) TimedOut() bool {
	return c.client.TimedOut()
}

func (c *RestClient) Get(path string) bool {
	return c.do("GET", path, nil)
}

func (c *RestClient) Post(path string, content []byte) bool {
	return c.do("POST", path, content)
}

func (c *RestClient) Put(path string, content []byte) bool {
	return c.do("PUT", path, content)
}

func (c *RestClient) Delete(path string) bool {
	return c.do("DELETE", path, nil)
}

func (c *RestClient) do(method, path string, content []byte) bool {
	message := &Message{Method: method, URL: path}
	message.SetHost(c.host, c.port)
	if content != nil {
		message.SetContent(ContentTypeJSONUTF8, content)
	}
	message.MakeStartLine()

	return c.client.Request(message, 0)
}
