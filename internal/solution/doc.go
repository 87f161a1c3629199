// Package solution is the business boundary of the triangle solver service.
// It defines the Service (solve, record, explain), the Store interface for
// solution history, the Explainer interface and the domain models.
package solution
