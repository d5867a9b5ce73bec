package protocols

type Controller interface {
	Handle(r HttpRequest) *HttpResponse
}
