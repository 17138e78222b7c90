// Package mocks provides hand-written test doubles for the ports used by the
// service and API layers.
//
// Each mock records its calls behind a mutex and either returns its default
// fields or delegates to an optional Fn field:
//
//	gen := &mocks.MockGenerator{
//	    GenerateFn: func(ctx context.Context, req generation.Request) (*generation.Response, error) {
//	        return &generation.Response{Text: "Objective: ..."}, nil
//	    },
//	}
package mocks
