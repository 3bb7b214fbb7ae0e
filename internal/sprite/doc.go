// Package sprite implements the image transforms of the asset pipeline.
//
// Every operation is a stateless function over a decoded image.Image: chroma
// key removal, content trimming, nearest-neighbor resizing, sprite-sheet
// slicing, and horizontal mirroring, plus palette extraction for pixel-art
// review. All coordinates are 0-based with the origin at the top-left corner.
//
// # Coordinate System
//
//   - X: horizontal position (0 = leftmost pixel)
//   - Y: vertical position (0 = topmost pixel)
//   - Rectangles follow Go image conventions: Min inclusive, Max exclusive
//
// # Transparency
//
// Chroma key output and every downstream stage use NRGBA (non-premultiplied
// alpha). Content, for trimming purposes, is any pixel with alpha > 0.
//
// # Error Handling
//
// Functions return errors for invalid inputs such as:
//   - Non-positive target dimensions
//   - Frame counts exceeding the sheet width
//   - File I/O errors during image loading or saving
package sprite
