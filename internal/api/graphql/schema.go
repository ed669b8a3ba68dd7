package graphql

import (
	"bytes"
	"context"
	_ "embed"

	"github.com/99designs/gqlgen/graphql"
	"github.com/vektah/gqlparser/v2"
	"github.com/vektah/gqlparser/v2/ast"

	apierrors "github.com/RonenBerka/TWNG-APP-sub000/internal/api/shared/errors"
	"github.com/RonenBerka/TWNG-APP-sub000/internal/claims"
	"github.com/RonenBerka/TWNG-APP-sub000/internal/store"
)

//go:embed schema.graphqls
var schemaSDL string

var parsedSchema = gqlparser.MustLoadSchema(&ast.Source{Name: "schema.graphqls", Input: schemaSDL})

// executableSchema serves the claim read model over gqlgen.
// Every field maps straight onto the query service, so fields are resolved
// against the collected selection set instead of generated resolvers.
type executableSchema struct {
	resolver *Resolver
}

// NewExecutableSchema creates an executable schema backed by the resolver
func NewExecutableSchema(resolver *Resolver) graphql.ExecutableSchema {
	return &executableSchema{resolver: resolver}
}

func (e *executableSchema) Schema() *ast.Schema {
	return parsedSchema
}

func (e *executableSchema) Complexity(ctx context.Context, typeName, field string, childComplexity int, rawArgs map[string]any) (int, bool) {
	return 0, false
}

func (e *executableSchema) Exec(ctx context.Context) graphql.ResponseHandler {
	opCtx := graphql.GetOperationContext(ctx)
	if opCtx.Operation.Operation != ast.Query {
		return graphql.OneShot(graphql.ErrorResponse(ctx, "unsupported GraphQL operation"))
	}

	return func(ctx context.Context) *graphql.Response {
		data := e.object(opCtx, opCtx.Operation.SelectionSet, "Query", func(field graphql.CollectedField) graphql.Marshaler {
			return e.rootField(ctx, opCtx, field)
		})

		var buf bytes.Buffer
		data.MarshalGQL(&buf)
		return &graphql.Response{Data: buf.Bytes()}
	}
}

// object marshals the fields selected on an object of the given type
func (e *executableSchema) object(opCtx *graphql.OperationContext, sel ast.SelectionSet, typeName string, resolve func(field graphql.CollectedField) graphql.Marshaler) graphql.Marshaler {
	fields := graphql.CollectFields(opCtx, sel, []string{typeName})
	out := graphql.NewFieldSet(fields)
	for i, field := range fields {
		if field.Name == "__typename" {
			out.Values[i] = graphql.MarshalString(typeName)
			continue
		}
		out.Values[i] = resolve(field)
	}
	return out
}

// rootField resolves one Query field, reporting failures on the field path
func (e *executableSchema) rootField(ctx context.Context, opCtx *graphql.OperationContext, field graphql.CollectedField) (ret graphql.Marshaler) {
	ctx = graphql.WithPathContext(ctx, graphql.NewPathWithField(field.Alias))
	defer func() {
		if r := recover(); r != nil {
			graphql.AddError(ctx, opCtx.Recover(ctx, r))
			ret = graphql.Null
		}
	}()

	args := field.ArgumentMap(opCtx.Variables)

	var (
		result graphql.Marshaler
		err    error
	)
	switch field.Name {
	case "claims":
		var page *claims.ClaimPage
		if page, err = e.resolver.Claims(ctx, args); err == nil {
			result = e.claimPage(opCtx, field.Selections, page)
		}
	case "claimStats":
		var stats *claims.ClaimStats
		if stats, err = e.resolver.ClaimStats(ctx); err == nil {
			result = e.claimStats(opCtx, field.Selections, stats)
		}
	case "claim":
		var claim *store.ClaimWithInstrument
		if claim, err = e.resolver.Claim(ctx, args); err == nil {
			result = e.claim(opCtx, field.Selections, claim)
		}
	default:
		err = apierrors.NewBadRequestError("introspection disabled")
	}

	if err != nil {
		graphql.AddError(ctx, err)
		return graphql.Null
	}
	return result
}

func (e *executableSchema) claimPage(opCtx *graphql.OperationContext, sel ast.SelectionSet, page *claims.ClaimPage) graphql.Marshaler {
	return e.object(opCtx, sel, "ClaimPage", func(field graphql.CollectedField) graphql.Marshaler {
		switch field.Name {
		case "items":
			items := make(graphql.Array, 0, len(page.Items))
			for i := range page.Items {
				items = append(items, e.claim(opCtx, field.Selections, &page.Items[i]))
			}
			return items
		case "total":
			return Uint64(page.Total)
		case "page":
			return graphql.MarshalInt(page.Page)
		case "perPage":
			return graphql.MarshalInt(page.PerPage)
		case "totalPages":
			return graphql.MarshalInt(page.TotalPages)
		}
		return graphql.Null
	})
}

func (e *executableSchema) claimStats(opCtx *graphql.OperationContext, sel ast.SelectionSet, stats *claims.ClaimStats) graphql.Marshaler {
	return e.object(opCtx, sel, "ClaimStats", func(field graphql.CollectedField) graphql.Marshaler {
		switch field.Name {
		case "total":
			return Uint64(stats.Total)
		case "pending":
			return Uint64(stats.Pending)
		case "underReview":
			return Uint64(stats.UnderReview)
		case "approved":
			return Uint64(stats.Approved)
		case "rejected":
			return Uint64(stats.Rejected)
		case "withdrawn":
			return Uint64(stats.Withdrawn)
		}
		return graphql.Null
	})
}

func (e *executableSchema) claim(opCtx *graphql.OperationContext, sel ast.SelectionSet, claim *store.ClaimWithInstrument) graphql.Marshaler {
	if claim == nil {
		return graphql.Null
	}

	return e.object(opCtx, sel, "Claim", func(field graphql.CollectedField) graphql.Marshaler {
		switch field.Name {
		case "id":
			return graphql.MarshalString(claim.ID)
		case "instrumentID":
			return graphql.MarshalString(claim.InstrumentID)
		case "claimerID":
			return graphql.MarshalString(claim.ClaimerID)
		case "status":
			return graphql.MarshalString(string(claim.Status))
		case "verificationType":
			return graphql.MarshalString(string(claim.VerificationType))
		case "verificationData":
			return JSON(claim.VerificationData)
		case "claimReason":
			return graphql.MarshalString(claim.ClaimReason)
		case "reviewedBy":
			return marshalOptionalString(claim.ReviewedBy)
		case "reviewedAt":
			if claim.ReviewedAt == nil {
				return graphql.Null
			}
			return graphql.MarshalTime(*claim.ReviewedAt)
		case "rejectionReason":
			return marshalOptionalString(claim.RejectionReason)
		case "createdAt":
			return graphql.MarshalTime(claim.CreatedAt)
		case "updatedAt":
			return graphql.MarshalTime(claim.UpdatedAt)
		case "instrument":
			return e.object(opCtx, field.Selections, "InstrumentSummary", func(field graphql.CollectedField) graphql.Marshaler {
				switch field.Name {
				case "make":
					return graphql.MarshalString(claim.InstrumentMake)
				case "model":
					return graphql.MarshalString(claim.InstrumentModel)
				case "year":
					return marshalOptionalString(claim.InstrumentYear)
				case "serialNumber":
					return marshalOptionalString(claim.InstrumentSerialNumber)
				}
				return graphql.Null
			})
		}
		return graphql.Null
	})
}

func marshalOptionalString(v *string) graphql.Marshaler {
	if v == nil {
		return graphql.Null
	}
	return graphql.MarshalString(*v)
}
