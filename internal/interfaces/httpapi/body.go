package httpapi

import (
	"context"
	"fmt"
	"io"
	"net/http"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"github.com/mkrogh/superliga-companion/internal/usecase"
	"github.com/valyala/bytebufferpool"
)

// maxRequestBody caps pasted imports at 1 MiB; a full roster paste is a few
// hundred KiB at most.
const maxRequestBody = 1 << 20

func decodeJSONBody(ctx context.Context, r *http.Request, dst any) error {
	ctx, span := startSpan(ctx, "httpapi.decodeJSONBody")
	defer span.End()

	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	if _, err := io.Copy(buf, io.LimitReader(r.Body, maxRequestBody+1)); err != nil {
		return crerr.Wrap(err, "read request body")
	}
	if buf.Len() > maxRequestBody {
		return fmt.Errorf("%w: request body exceeds %d bytes", usecase.ErrInvalidInput, maxRequestBody)
	}
	if buf.Len() == 0 {
		return fmt.Errorf("%w: request body is empty", usecase.ErrInvalidInput)
	}

	if err := sonic.Unmarshal(buf.Bytes(), dst); err != nil {
		return fmt.Errorf("%w: decode request body: %v", usecase.ErrInvalidInput, err)
	}

	return nil
}
