package server

import (
	"encoding/json"
	"fmt"

	"github.com/ironsheep/image-editor-mcp/internal/codec"
	"github.com/ironsheep/image-editor-mcp/internal/editor"
	"github.com/ironsheep/image-editor-mcp/internal/imaging"
)

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "image_load", "image_sepia").
	Name string `json:"name"`

	// Arguments contains the tool-specific parameters as JSON.
	Arguments json.RawMessage `json:"arguments"`
}

// handleToolsCall processes a tools/call request and executes the specified tool.
//
// The response wraps the tool result in MCP's content format:
//
//	{
//	  "content": [{"type": "text", "text": "<JSON result>"}]
//	}
//
// Tool execution errors return a JSON-RPC error response with code -32000.
func (s *Server) handleToolsCall(req *MCPRequest) *MCPResponse {
	var params ToolCallParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return s.errorResponse(req.ID, -32602, "Invalid params", err.Error())
	}

	result, err := s.executeTool(params.Name, params.Arguments)
	if err != nil {
		return s.errorResponse(req.ID, -32000, "Tool execution failed", err.Error())
	}

	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"content": []map[string]interface{}{
				{
					"type": "text",
					"text": mustMarshalJSON(result),
				},
			},
		},
	}
}

// executeTool dispatches tool execution to the appropriate handler function.
//
// Each tool handler decodes its arguments, applies defaults for optional
// parameters, and calls into the editor. Edits store their result in the
// registry and return the new image's info.
func (s *Server) executeTool(name string, args json.RawMessage) (interface{}, error) {
	switch name {
	// Registry
	case "image_load":
		return s.handleImageLoad(args)
	case "image_save":
		return s.handleImageSave(args)
	case "image_list":
		return map[string]interface{}{"images": s.ed.List()}, nil
	case "image_info":
		return s.handleImageInfo(args)
	case "image_delete":
		return s.handleImageDelete(args)

	// Edits
	case "image_flip":
		return s.handleImageFlip(args)
	case "image_brighten":
		return s.handleImageBrighten(args)
	case "image_component":
		return s.handleImageComponent(args)
	case "image_sepia":
		return s.handleSimpleEdit(editor.OpSepia, args)
	case "image_greyscale":
		return s.handleSimpleEdit(editor.OpGreyscale, args)
	case "image_blur":
		return s.handleSimpleEdit(editor.OpBlur, args)
	case "image_sharpen":
		return s.handleSimpleEdit(editor.OpSharpen, args)
	case "image_downscale":
		return s.handleImageDownscale(args)

	// Analysis
	case "image_histogram":
		return s.handleImageHistogram(args)
	case "image_sample_color":
		return s.handleImageSampleColor(args)
	case "image_dominant_colors":
		return s.handleImageDominantColors(args)
	case "image_preview":
		return s.handleImagePreview(args)

	default:
		return nil, fmt.Errorf("unknown tool: %s", name)
	}
}

// errorResponse creates a JSON-RPC error response with the given details.
func (s *Server) errorResponse(id interface{}, code int, message, data string) *MCPResponse {
	resp := &MCPResponse{
		JSONRPC: "2.0",
		ID:      id,
		Error: &MCPError{
			Code:    code,
			Message: message,
		},
	}
	if data != "" {
		resp.Error.Data = data
	}
	return resp
}

// mustMarshalJSON converts a value to pretty-printed JSON string.
// Panics are suppressed; on marshal failure, returns an empty string.
func mustMarshalJSON(v interface{}) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}

// decodeArgs unmarshals tool arguments into v. Missing arguments decode as
// an empty object.
func decodeArgs(args json.RawMessage, v interface{}) error {
	if len(args) == 0 || string(args) == "null" {
		return nil
	}
	if err := json.Unmarshal(args, v); err != nil {
		return fmt.Errorf("invalid arguments: %v: %w", err, imaging.ErrInvalidParameter)
	}
	return nil
}

// === Registry Handlers ===

type imageFileArgs struct {
	Path string `json:"path"`
	Name string `json:"name"`
}

func (s *Server) handleImageLoad(args json.RawMessage) (interface{}, error) {
	var a imageFileArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	return s.ed.Load(a.Path, a.Name)
}

func (s *Server) handleImageSave(args json.RawMessage) (interface{}, error) {
	var a imageFileArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	if err := s.ed.Save(a.Name, a.Path); err != nil {
		return nil, err
	}
	return map[string]interface{}{"name": a.Name, "path": a.Path}, nil
}

type imageNameArgs struct {
	Name string `json:"name"`
}

func (s *Server) handleImageInfo(args json.RawMessage) (interface{}, error) {
	var a imageNameArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	return s.ed.Info(a.Name)
}

func (s *Server) handleImageDelete(args json.RawMessage) (interface{}, error) {
	var a imageNameArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	if err := s.ed.Delete(a.Name); err != nil {
		return nil, err
	}
	return map[string]interface{}{"deleted": a.Name}, nil
}

// === Edit Handlers ===

type imageEditArgs struct {
	Source string `json:"source"`
	Mask   string `json:"mask"`
	Dest   string `json:"dest"`
}

func (a imageEditArgs) request(op editor.Op) editor.Request {
	return editor.Request{Op: op, Source: a.Source, Mask: a.Mask, Dest: a.Dest}
}

func (s *Server) handleSimpleEdit(op editor.Op, args json.RawMessage) (interface{}, error) {
	var a imageEditArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	return s.ed.Apply(a.request(op))
}

type imageFlipArgs struct {
	imageEditArgs
	Axis string `json:"axis"`
}

func (s *Server) handleImageFlip(args json.RawMessage) (interface{}, error) {
	var a imageFlipArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	axis, err := imaging.ParseAxis(a.Axis)
	if err != nil {
		return nil, err
	}
	req := a.request(editor.OpFlip)
	req.Axis = axis
	return s.ed.Apply(req)
}

type imageBrightenArgs struct {
	imageEditArgs
	Delta int `json:"delta"`
}

func (s *Server) handleImageBrighten(args json.RawMessage) (interface{}, error) {
	var a imageBrightenArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	req := a.request(editor.OpBrighten)
	req.Delta = a.Delta
	return s.ed.Apply(req)
}

type imageComponentArgs struct {
	imageEditArgs
	Channel string `json:"channel"`
}

func (s *Server) handleImageComponent(args json.RawMessage) (interface{}, error) {
	var a imageComponentArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	ch, err := imaging.ParseChannel(a.Channel)
	if err != nil {
		return nil, err
	}
	req := a.request(editor.OpComponent)
	req.Channel = ch
	return s.ed.Apply(req)
}

type imageDownscaleArgs struct {
	imageEditArgs
	Width        int     `json:"width"`
	Height       int     `json:"height"`
	WidthFactor  float64 `json:"width_factor"`
	HeightFactor float64 `json:"height_factor"`
}

func (s *Server) handleImageDownscale(args json.RawMessage) (interface{}, error) {
	var a imageDownscaleArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	req := a.request(editor.OpDownscale)
	req.Width, req.Height = a.Width, a.Height
	req.WidthFactor, req.HeightFactor = a.WidthFactor, a.HeightFactor
	return s.ed.Apply(req)
}

// === Analysis Handlers ===

// histogramRow is one non-empty histogram bucket.
type histogramRow struct {
	Value int `json:"value"`
	imaging.Bucket
}

func (s *Server) handleImageHistogram(args json.RawMessage) (interface{}, error) {
	var a imageNameArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	h, err := s.ed.Histogram(a.Name)
	if err != nil {
		return nil, err
	}

	rows := make([]histogramRow, 0, imaging.HistogramBins)
	for v, b := range h.Buckets {
		if b != (imaging.Bucket{}) {
			rows = append(rows, histogramRow{Value: v, Bucket: b})
		}
	}
	return map[string]interface{}{
		"name":    a.Name,
		"peak":    h.Peak(),
		"totals":  h.Totals(),
		"buckets": rows,
	}, nil
}

type imageSampleColorArgs struct {
	Name string `json:"name"`
	X    int    `json:"x"`
	Y    int    `json:"y"`
}

func (s *Server) handleImageSampleColor(args json.RawMessage) (interface{}, error) {
	var a imageSampleColorArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	return s.ed.SampleColor(a.Name, a.X, a.Y)
}

type imageDominantColorsArgs struct {
	Name   string          `json:"name"`
	Count  int             `json:"count"`
	Region *imaging.Region `json:"region,omitempty"`
}

func (s *Server) handleImageDominantColors(args json.RawMessage) (interface{}, error) {
	var a imageDominantColorsArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	if a.Count == 0 {
		a.Count = 5
	}
	return s.ed.DominantColors(a.Name, a.Count, a.Region)
}

type imagePreviewArgs struct {
	Name   string          `json:"name"`
	Region *imaging.Region `json:"region,omitempty"`
	Area   string          `json:"area"`
	Scale  float64         `json:"scale"`
}

func (s *Server) handleImagePreview(args json.RawMessage) (interface{}, error) {
	var a imagePreviewArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	img, err := s.ed.Registry().Get(a.Name)
	if err != nil {
		return nil, err
	}
	region := a.Region
	if region == nil && a.Area != "" {
		r, err := codec.NamedRegion(img.Width(), img.Height(), a.Area)
		if err != nil {
			return nil, err
		}
		region = &r
	}
	return codec.Preview(img, region, a.Scale)
}
