// Package api handles incoming HTTP requests for the author resource. It
// decodes and validates request bodies, calls the author service and
// translates results and errors into JSON responses.
//
// Every error response has the shape {"error": "<message>"} with an
// optional trace_id. Status codes come from MapErrorToStatusCode and
// messages from GetSafeErrorMessage, so internal error text never reaches
// a client.
package api
