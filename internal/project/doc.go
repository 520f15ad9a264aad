// Package project groups user types, models and stories of one product and runs the CRUD
// generator over its models.
package project
