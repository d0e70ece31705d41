package middleware

import "github.com/gin-gonic/gin"

// Decision is the outcome of a pipeline stage: either continue to the next
// handler, or stop the chain and answer with Status and Body.
type Decision struct {
	stop   bool
	Status int
	Body   any
}

// Continue lets the request proceed down the chain.
func Continue() Decision {
	return Decision{}
}

// ShortCircuit ends the chain with the given response.
func ShortCircuit(status int, body any) Decision {
	return Decision{stop: true, Status: status, Body: body}
}

// ShortCircuited reports whether the decision ends the chain.
func (d Decision) ShortCircuited() bool {
	return d.stop
}

// StageFunc inspects a request and decides whether the chain continues.
type StageFunc func(c *gin.Context) Decision

// Stage adapts fn to a gin handler. On Continue the rest of the chain runs
// exactly once; on ShortCircuit it never runs.
func Stage(fn StageFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		d := fn(c)
		if d.ShortCircuited() {
			c.AbortWithStatusJSON(d.Status, d.Body)
			return
		}
		c.Next()
	}
}
