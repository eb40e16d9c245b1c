// Package requirement defines the structured gating conditions attached to a
// course and decides whether they hold for a given academic standing.
//
// A course's requirements form a Set, read as the logical AND of its members.
// The empty Set is always satisfied. Each member is one of:
//
//   - CourseRef: a named course must be approved.
//   - CreditThreshold: approved credits must reach a minimum.
//   - SemesterCompletionThreshold: every course scheduled in terms 1..N must be approved.
//   - Unsatisfiable: a clause that was recognised but could not be read; it never holds.
//
// Evaluation is monotonic. Approving more courses or accumulating more credits
// never turns a satisfied Set unsatisfied.
package requirement
