// Package handler adapts typed request handlers to net/http.
//
// A HandlerFunc receives a Context and a bound request value and returns a
// Response. Wrap runs the binders, the decorators and the handler, then renders
// the response; any error goes to the ErrorHandler. Responses negotiate between
// plain JSON and Datastar server-sent events:
//
//	h := handler.Wrap(func(ctx handler.Context, req ValidateRequest) handler.Response {
//		if handler.IsDataStar(ctx.Request()) {
//			return handler.Signals(signals)
//		}
//		return handler.JSON(result)
//	}, handler.WithBinders(bindValues))
//
// Errors are classified by type: HTTPError carries its own status,
// validator.ValidationErrors answers 422 with per-field details.
package handler
