// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

// BoundingBox is the face position as ratios of the overall image size.
type BoundingBox struct {
	Left   float64
	Top    float64
	Width  float64
	Height float64
}

// Area returns the box area as a ratio of the image area.
func (b BoundingBox) Area() float64 {
	return b.Width * b.Height
}

// FaceRecord is a face indexed by the recognition provider under a user identifier.
type FaceRecord struct {
	FaceID      string      // Provider-assigned id of the stored face template.
	UserID      string      // External tag the face was indexed under.
	Confidence  float64     // Detection confidence, 0-100.
	BoundingBox BoundingBox // Where the face was found in the source image.
}

// FaceMatch is the closest indexed face found for a query image.
type FaceMatch struct {
	FaceID     string
	UserID     string
	Similarity float64 // Provider-reported similarity, 0-100.
}
