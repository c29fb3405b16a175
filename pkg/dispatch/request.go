package dispatch

import (
	"github.com/tbaccus/hue-dispatch/pkg/codes"
	"github.com/tbaccus/hue-dispatch/pkg/hueid"
)

// ResourcePathPrefix is the Hue API v2 path every resource lives under.
const ResourcePathPrefix = "/clip/v2/resource/"

// MaxBodyLength is the fixed budget for a request body. Payloads the builder
// produces fit comfortably; anything larger is rejected rather than truncated.
const MaxBodyLength = 256

// ResourceType is one of the fixed Hue resource-type path segments.
type ResourceType string

const (
	ResourceLight        ResourceType = "light"
	ResourceGroupedLight ResourceType = "grouped_light"
	ResourceSmartScene   ResourceType = "smart_scene"
	ResourceScene        ResourceType = "scene"
)

func (rt ResourceType) valid() bool {
	switch rt {
	case ResourceLight, ResourceGroupedLight, ResourceSmartScene, ResourceScene:
		return true
	}
	return false
}

// Request is an immutable resource path and JSON body pair, ready for
// delivery. Requests are built by the command package and owned by the
// connection once submitted.
type Request struct {
	resourcePath string
	body         string
}

// NewRequest validates the resource type, id, and body and builds a Request.
func NewRequest(rt ResourceType, resourceID, body string) (*Request, error) {
	if !rt.valid() {
		return nil, codes.New(codes.ErrInvalidArgument, "unknown resource type %q", rt)
	}
	if err := hueid.ValidateResourceID(resourceID); err != nil {
		return nil, err
	}
	if body == "" {
		return nil, codes.New(codes.ErrInvalidArgument, "request body is required")
	}
	if len(body) > MaxBodyLength {
		return nil, codes.New(codes.ErrSizeExceeded, "request body is %d bytes, budget is %d", len(body), MaxBodyLength)
	}
	return &Request{
		resourcePath: string(rt) + "/" + resourceID,
		body:         body,
	}, nil
}

// ResourcePath returns the "{type}/{id}" path segment for this request.
func (r *Request) ResourcePath() string { return r.resourcePath }

// Body returns the JSON body.
func (r *Request) Body() string { return r.body }
