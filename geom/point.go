package geom

// Point is an exact 2D board-unit coordinate. Board unit is caller
// defined (1nm is conventional); the core never converts it.
type Point struct {
	X, Y int64
}

// Vector is a displacement between two Points. Arithmetic on Vector
// never introduces rounding: all operations here are integer.
type Vector struct {
	X, Y int64
}

// Add returns p translated by v.
func (p Point) Add(v Vector) Point { return Point{p.X + v.X, p.Y + v.Y} }

// Sub returns the vector from q to p (p - q).
func (p Point) Sub(q Point) Vector { return Vector{p.X - q.X, p.Y - q.Y} }

// Equal reports exact coordinate equality.
func (p Point) Equal(q Point) bool { return p.X == q.X && p.Y == q.Y }

// Scale returns v scaled by an integer factor.
func (v Vector) Scale(k int64) Vector { return Vector{v.X * k, v.Y * k} }

// Add returns the sum of two vectors.
func (v Vector) Add(w Vector) Vector { return Vector{v.X + w.X, v.Y + w.Y} }

// Neg returns the opposite vector.
func (v Vector) Neg() Vector { return Vector{-v.X, -v.Y} }

// Dot returns the dot product of v and w.
func (v Vector) Dot(w Vector) int64 { return v.X*w.X + v.Y*w.Y }

// Cross returns the z-component of the 2D cross product v × w.
// Positive means w is counter-clockwise from v.
func (v Vector) Cross(w Vector) int64 { return v.X*w.Y - v.Y*w.X }

// LengthSquared returns |v|^2, avoiding the sqrt for comparison-only callers.
func (v Vector) LengthSquared() int64 { return v.X*v.X + v.Y*v.Y }

// Length returns |v| via integer sqrt (floor). Exact for perfect squares,
// otherwise the largest n with n*n <= |v|^2 -- sufficient for clearance
// comparisons, which always compare against another integer distance.
func (v Vector) Length() int64 { return isqrt(v.LengthSquared()) }

// Distance returns the exact-floor Euclidean distance between p and q.
func (p Point) Distance(q Point) int64 { return p.Sub(q).Length() }

// DistanceSquared returns the squared Euclidean distance, useful for
// nearest-neighbour comparisons where the sqrt can be deferred or skipped.
func (p Point) DistanceSquared(q Point) int64 { return p.Sub(q).LengthSquared() }

// isqrt returns floor(sqrt(n)) for n >= 0 using Newton's method on
// integers; n < 0 returns 0 (callers never pass a negative magnitude).
func isqrt(n int64) int64 {
	if n <= 0 {
		return 0
	}
	x := n
	y := (x + 1) / 2
	for y < x {
		x = y
		y = (x + n/x) / 2
	}
	return x
}
