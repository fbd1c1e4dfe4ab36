package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/graphql-go/graphql"

	"github.com/kdeguzman/negosyoplan/internal/core/domain"
)

// buildSchema creates the GraphQL schema wired to our services.
func buildSchema(deps *Dependencies) (graphql.Schema, error) {
	geoPointType := graphql.NewObject(graphql.ObjectConfig{
		Name: "GeoPoint",
		Fields: graphql.Fields{
			"lat": &graphql.Field{Type: graphql.Float},
			"lon": &graphql.Field{Type: graphql.Float},
		},
	})

	poiType := graphql.NewObject(graphql.ObjectConfig{
		Name: "PointOfInterest",
		Fields: graphql.Fields{
			"name":           &graphql.Field{Type: graphql.String},
			"type":           &graphql.Field{Type: graphql.String},
			"category":       &graphql.Field{Type: graphql.String},
			"location":       &graphql.Field{Type: geoPointType},
			"description":    &graphql.Field{Type: graphql.String},
			"business_hours": &graphql.Field{Type: graphql.String},
			"significance":   &graphql.Field{Type: graphql.String},
			"distance":       &graphql.Field{Type: graphql.Float},
		},
	})

	profileType := graphql.NewObject(graphql.ObjectConfig{
		Name: "CityProfile",
		Fields: graphql.Fields{
			"name":           &graphql.Field{Type: graphql.String},
			"province":       &graphql.Field{Type: graphql.String},
			"population":     &graphql.Field{Type: graphql.Int},
			"economy":        &graphql.Field{Type: graphql.String},
			"industries":     &graphql.Field{Type: graphql.NewList(graphql.String)},
			"demographics":   &graphql.Field{Type: graphql.String},
			"growth_outlook": &graphql.Field{Type: graphql.String},
		},
	})

	opportunityType := graphql.NewObject(graphql.ObjectConfig{
		Name: "OpportunityScore",
		Fields: graphql.Fields{
			"suitability":      &graphql.Field{Type: graphql.Int},
			"competition":      &graphql.Field{Type: graphql.String},
			"market_potential": &graphql.Field{Type: graphql.String},
			"recommendations":  &graphql.Field{Type: graphql.NewList(graphql.String)},
		},
	})

	businessType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Business",
		Fields: graphql.Fields{
			"id":          &graphql.Field{Type: graphql.String},
			"name":        &graphql.Field{Type: graphql.String},
			"category":    &graphql.Field{Type: graphql.String},
			"barangay":    &graphql.Field{Type: graphql.String},
			"address":     &graphql.Field{Type: graphql.String},
			"location":    &graphql.Field{Type: geoPointType},
			"contact":     &graphql.Field{Type: graphql.String},
			"permit_year": &graphql.Field{Type: graphql.Int},
			"active":      &graphql.Field{Type: graphql.Boolean},
		},
	})

	queryType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Query",
		Fields: graphql.Fields{
			"cityProfile": &graphql.Field{
				Type:        profileType,
				Description: "Static profile of the configured city",
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return deps.Insights.CityProfile(), nil
				},
			},
			"poisNearby": &graphql.Field{
				Type:        graphql.NewList(poiType),
				Description: "Find points of interest near a location",
				Args: graphql.FieldConfigArgument{
					"lat":    &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Float)},
					"lon":    &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Float)},
					"radius": &graphql.ArgumentConfig{Type: graphql.Float, DefaultValue: 2000.0},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					lat := p.Args["lat"].(float64)
					lon := p.Args["lon"].(float64)
					radius := p.Args["radius"].(float64)
					return deps.POIs.FindNearby(p.Context, lat, lon, radius, nil)
				},
			},
			"opportunity": &graphql.Field{
				Type:        opportunityType,
				Description: "Viability assessment for a business category",
				Args: graphql.FieldConfigArgument{
					"category": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return deps.Insights.Opportunity(p.Args["category"].(string)), nil
				},
			},
			"businesses": &graphql.Field{
				Type:        graphql.NewList(businessType),
				Description: "List registered businesses from the LGU directory",
				Args: graphql.FieldConfigArgument{
					"category": &graphql.ArgumentConfig{Type: graphql.String, DefaultValue: ""},
					"barangay": &graphql.ArgumentConfig{Type: graphql.String, DefaultValue: ""},
					"limit":    &graphql.ArgumentConfig{Type: graphql.Int, DefaultValue: 25},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					if deps.Businesses == nil {
						return nil, nil
					}
					filter := domain.BusinessFilter{
						Category: p.Args["category"].(string),
						Barangay: p.Args["barangay"].(string),
					}
					out, _, err := deps.Businesses.List(p.Context, filter, 0, p.Args["limit"].(int))
					return out, err
				},
			},
		},
	})

	return graphql.NewSchema(graphql.SchemaConfig{
		Query: queryType,
	})
}

// GraphQLHandler serves the GraphQL endpoint.
func GraphQLHandler(deps *Dependencies) fiber.Handler {
	schema, err := buildSchema(deps)
	if err != nil {
		// This would be a programming error in the schema definition
		panic("graphql schema build: " + err.Error())
	}

	type gqlRequest struct {
		Query         string                 `json:"query"`
		OperationName string                 `json:"operationName"`
		Variables     map[string]interface{} `json:"variables"`
	}

	return func(c *fiber.Ctx) error {
		var req gqlRequest
		if err := c.BodyParser(&req); err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "invalid request body"})
		}

		result := graphql.Do(graphql.Params{
			Schema:         schema,
			RequestString:  req.Query,
			VariableValues: req.Variables,
			OperationName:  req.OperationName,
			Context:        c.Context(),
		})

		return c.JSON(result)
	}
}
