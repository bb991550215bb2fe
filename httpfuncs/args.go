package httpfuncs

import (
	"context"
	"fmt"

	"github.com/hazelvis/Medium-Publisher-Logic/constants"
	mederrors "github.com/hazelvis/Medium-Publisher-Logic/errors"
)

func (args *RequestArgs) validateHttp3Arg() {
	if !args.Http2 && !args.Http3 {
		// Medium's endpoints are served over HTTP/2,
		// hence the default when neither is enabled.
		args.Http2 = true
	} else if args.Http2 && args.Http3 {
		panic(
			fmt.Errorf(
				"error %d: http2 and http3 cannot be enabled at the same time",
				mederrors.DEV_ERROR,
			),
		)
	}
}

func (args *RequestArgs) getDefaultArgs() {
	if args.Headers == nil {
		args.Headers = make(map[string]string)
	}

	if args.Params == nil {
		args.Params = make(map[string]string)
	}

	if args.UserAgent == "" {
		args.UserAgent = constants.USER_AGENT
	}

	if args.Context == nil {
		args.Context = context.Background()
	}
}

// ValidateArgs validates the arguments of the request
//
// Will panic if the arguments are invalid as this is a developer error
func (args *RequestArgs) ValidateArgs() {
	args.getDefaultArgs()
	args.validateHttp3Arg()

	if args.Method == "" {
		panic(
			fmt.Errorf(
				"error %d: method cannot be empty",
				mederrors.DEV_ERROR,
			),
		)
	}

	if args.Url == "" {
		panic(
			fmt.Errorf(
				"error %d: url cannot be empty",
				mederrors.DEV_ERROR,
			),
		)
	}

	if args.Timeout < 0 {
		panic(
			fmt.Errorf(
				"error %d: timeout cannot be negative",
				mederrors.DEV_ERROR,
			),
		)
	} else if args.Timeout == 0 {
		args.Timeout = constants.API_TIMEOUT
	}
}
