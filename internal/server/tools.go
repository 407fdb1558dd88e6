package server

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

func stringProp(description string) map[string]interface{} {
	return map[string]interface{}{"type": "string", "description": description}
}

func integerProp(description string) map[string]interface{} {
	return map[string]interface{}{"type": "integer", "description": description}
}

func numberProp(description string) map[string]interface{} {
	return map[string]interface{}{"type": "number", "description": description}
}

func regionProp(description string) map[string]interface{} {
	return map[string]interface{}{
		"type":        "object",
		"description": description,
		"properties": map[string]interface{}{
			"x1": map[string]interface{}{"type": "integer"},
			"y1": map[string]interface{}{"type": "integer"},
			"x2": map[string]interface{}{"type": "integer"},
			"y2": map[string]interface{}{"type": "integer"},
		},
		"required": []string{"x1", "y1", "x2", "y2"},
	}
}

// editSchema is the schema shared by every source → dest operation. Extra
// properties are merged in and listed as required when required is true.
func editSchema(masked bool, extra map[string]interface{}, required ...string) map[string]interface{} {
	props := map[string]interface{}{
		"source": stringProp("Name of the image to read"),
		"dest":   stringProp("Name to store the result under; may equal source"),
	}
	if masked {
		props["mask"] = stringProp("Optional name of a mask image of the same size. Only pixels where the mask is pure black are edited.")
	}
	for k, v := range extra {
		props[k] = v
	}
	return map[string]interface{}{
		"type":       "object",
		"properties": props,
		"required":   append([]string{"source", "dest"}, required...),
	}
}

func nameSchema(description string) map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"name": stringProp(description),
		},
		"required": []string{"name"},
	}
}

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	return []Tool{
		// Registry
		{
			Name:        "image_load",
			Description: "Load an image file (PPM, PNG, JPEG, GIF, BMP or TIFF) and store it under a name for later operations.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": stringProp("Absolute path to the image file"),
					"name": stringProp("Name to store the image under"),
				},
				"required": []string{"path", "name"},
			},
		},
		{
			Name:        "image_save",
			Description: "Save a named image to a file. The format follows the file extension; PPM keeps the image's max value, other formats are written as 8-bit.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"name": stringProp("Name of the image to save"),
					"path": stringProp("Absolute path of the output file"),
				},
				"required": []string{"name", "path"},
			},
		},
		{
			Name:        "image_list",
			Description: "List the names, dimensions and max values of all stored images.",
			InputSchema: map[string]interface{}{
				"type":       "object",
				"properties": map[string]interface{}{},
			},
		},
		{
			Name:        "image_info",
			Description: "Get the width, height and max channel value of a named image.",
			InputSchema: nameSchema("Name of the image"),
		},
		{
			Name:        "image_delete",
			Description: "Remove a named image from memory.",
			InputSchema: nameSchema("Name of the image to remove"),
		},

		// Edits
		{
			Name:        "image_flip",
			Description: "Mirror an image horizontally (left-right) or vertically (top-bottom).",
			InputSchema: editSchema(true, map[string]interface{}{
				"axis": map[string]interface{}{
					"type":        "string",
					"enum":        []string{"horizontal", "vertical"},
					"description": "Flip direction",
				},
			}, "axis"),
		},
		{
			Name:        "image_brighten",
			Description: "Add a constant to every channel, clamping to [0, max value]. Negative amounts darken.",
			InputSchema: editSchema(true, map[string]interface{}{
				"delta": integerProp("Amount to add to each channel"),
			}, "delta"),
		},
		{
			Name:        "image_component",
			Description: "Make a greyscale image from one component: red, green, blue, value (max channel), intensity (channel average) or luma (BT.709 weighting).",
			InputSchema: editSchema(true, map[string]interface{}{
				"channel": map[string]interface{}{
					"type":        "string",
					"enum":        []string{"red", "green", "blue", "value", "intensity", "luma"},
					"description": "Component to copy into all three channels",
				},
			}, "channel"),
		},
		{
			Name:        "image_sepia",
			Description: "Apply a sepia tone color transform.",
			InputSchema: editSchema(true, nil),
		},
		{
			Name:        "image_greyscale",
			Description: "Convert to greyscale with the luma color transform.",
			InputSchema: editSchema(true, nil),
		},
		{
			Name:        "image_blur",
			Description: "Blur with a 3x3 Gaussian kernel.",
			InputSchema: editSchema(true, nil),
		},
		{
			Name:        "image_sharpen",
			Description: "Sharpen with a 5x5 kernel.",
			InputSchema: editSchema(true, nil),
		},
		{
			Name:        "image_downscale",
			Description: "Shrink an image with bilinear interpolation, either to an explicit width and height or by scale factors in (0, 1]. Masks are not supported.",
			InputSchema: editSchema(false, map[string]interface{}{
				"width":         integerProp("Target width in pixels"),
				"height":        integerProp("Target height in pixels"),
				"width_factor":  numberProp("Width scale factor in (0, 1], used when width/height are not given"),
				"height_factor": numberProp("Height scale factor in (0, 1], used when width/height are not given"),
			}),
		},

		// Analysis
		{
			Name:        "image_histogram",
			Description: "Count red, green, blue and intensity values 0-255. Only non-empty buckets are returned.",
			InputSchema: nameSchema("Name of the image"),
		},
		{
			Name:        "image_sample_color",
			Description: "Get the exact color value at a specific pixel coordinate.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"name": stringProp("Name of the image"),
					"x":    integerProp("X coordinate (0-based, from left)"),
					"y":    integerProp("Y coordinate (0-based, from top)"),
				},
				"required": []string{"name", "x", "y"},
			},
		},
		{
			Name:        "image_dominant_colors",
			Description: "Find the most common colors in an image or region.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"name": stringProp("Name of the image"),
					"count": map[string]interface{}{
						"type":        "integer",
						"description": "Number of colors to return. Default 5",
						"default":     5,
					},
					"region": regionProp("Optional region to analyze (defaults to entire image)"),
				},
				"required": []string{"name"},
			},
		},
		{
			Name:        "image_preview",
			Description: "Render a named image, or part of it, as a base64-encoded PNG so the result of an edit can be inspected without saving.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"name":   stringProp("Name of the image"),
					"region": regionProp("Optional rectangle to crop to"),
					"area": map[string]interface{}{
						"type":        "string",
						"enum":        []string{"top-left", "top-right", "bottom-left", "bottom-right", "top-half", "bottom-half", "left-half", "right-half", "center"},
						"description": "Optional named area to crop to; ignored when region is given",
					},
					"scale": map[string]interface{}{
						"type":        "number",
						"description": "Optional scale factor (e.g., 2.0 to double size). Default 1.0",
						"default":     1.0,
					},
				},
				"required": []string{"name"},
			},
		},
	}
}

// handleToolsList returns the list of available tools
func (s *Server) handleToolsList(req *MCPRequest) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"tools": GetToolDefinitions(),
		},
	}
}
