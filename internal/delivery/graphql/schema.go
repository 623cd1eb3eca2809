package graphql

import (
	deliverycontext "marketplace/internal/delivery/context"
	"marketplace/internal/domain/entity"
	"marketplace/internal/usecase"

	"github.com/graphql-go/graphql"
	"github.com/pkg/errors"
)

// newSchema builds the executable schema. Every mutation takes a single
// non-null "input" object; resolvers delegate to the usecase layer and the
// caller identity, when present, travels in the request context.
func newSchema(userUC usecase.UserUsecase, productUC usecase.ProductUsecase) (graphql.Schema, error) {
	tokenType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Token",
		Fields: graphql.Fields{
			"token": &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		},
	})

	productType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Product",
		Fields: graphql.Fields{
			"id":          &graphql.Field{Type: graphql.NewNonNull(graphql.ID)},
			"name":        &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"description": &graphql.Field{Type: graphql.String},
			"ownerId":     &graphql.Field{Type: graphql.String},
			"createdAt":   &graphql.Field{Type: graphql.DateTime},
			"updatedAt":   &graphql.Field{Type: graphql.DateTime},
		},
	})

	signUpInput := graphql.NewInputObject(graphql.InputObjectConfig{
		Name: "SignUpInput",
		Fields: graphql.InputObjectConfigFieldMap{
			"emailAddress": &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
			"firstname":    &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
			"lastname":     &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
			"password":     &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
		},
	})

	authenticateInput := graphql.NewInputObject(graphql.InputObjectConfig{
		Name: "AuthenticateInput",
		Fields: graphql.InputObjectConfigFieldMap{
			"emailAddress": &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
			"password":     &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
		},
	})

	createProductInput := graphql.NewInputObject(graphql.InputObjectConfig{
		Name: "CreateProductInput",
		Fields: graphql.InputObjectConfigFieldMap{
			"name":        &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
			"description": &graphql.InputObjectFieldConfig{Type: graphql.String},
		},
	})

	productBodyInput := graphql.NewInputObject(graphql.InputObjectConfig{
		Name: "ProductInput",
		Fields: graphql.InputObjectConfigFieldMap{
			"name":        &graphql.InputObjectFieldConfig{Type: graphql.String},
			"description": &graphql.InputObjectFieldConfig{Type: graphql.String},
		},
	})

	updateProductInput := graphql.NewInputObject(graphql.InputObjectConfig{
		Name: "UpdateProductInput",
		Fields: graphql.InputObjectConfigFieldMap{
			"id":   &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.ID)},
			"body": &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(productBodyInput)},
		},
	})

	queryType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Query",
		Fields: graphql.Fields{
			"hello": &graphql.Field{
				Type: graphql.String,
				Resolve: func(_ graphql.ResolveParams) (any, error) {
					return "WEW", nil
				},
			},
		},
	})

	mutationType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Mutation",
		Fields: graphql.Fields{
			"signUp": &graphql.Field{
				Type: graphql.NewNonNull(tokenType),
				Args: graphql.FieldConfigArgument{
					"input": &graphql.ArgumentConfig{Type: graphql.NewNonNull(signUpInput)},
				},
				Resolve: func(p graphql.ResolveParams) (any, error) {
					input := inputArg(p)
					out, err := userUC.SignUp(p.Context, &usecase.SignUpInput{
						EmailAddress: stringField(input, "emailAddress"),
						Firstname:    stringField(input, "firstname"),
						Lastname:     stringField(input, "lastname"),
						Password:     stringField(input, "password"),
					})
					if err != nil {
						return nil, err
					}

					return map[string]any{"token": out.Token}, nil
				},
			},
			"authenticate": &graphql.Field{
				Type: graphql.NewNonNull(tokenType),
				Args: graphql.FieldConfigArgument{
					"input": &graphql.ArgumentConfig{Type: graphql.NewNonNull(authenticateInput)},
				},
				Resolve: func(p graphql.ResolveParams) (any, error) {
					input := inputArg(p)
					out, err := userUC.Authenticate(p.Context, &usecase.AuthenticateInput{
						EmailAddress: stringField(input, "emailAddress"),
						Password:     stringField(input, "password"),
					})
					if err != nil {
						return nil, err
					}

					return map[string]any{"token": out.Token}, nil
				},
			},
			"createProduct": &graphql.Field{
				Type: graphql.NewNonNull(productType),
				Args: graphql.FieldConfigArgument{
					"input": &graphql.ArgumentConfig{Type: graphql.NewNonNull(createProductInput)},
				},
				Resolve: func(p graphql.ResolveParams) (any, error) {
					input := inputArg(p)
					callerID := deliverycontext.GetCallerID(p.Context)
					product, err := productUC.CreateProduct(p.Context, callerID, &usecase.CreateProductInput{
						Name:        stringField(input, "name"),
						Description: stringField(input, "description"),
					})
					if err != nil {
						return nil, err
					}

					return productPayload(product), nil
				},
			},
			"updateProduct": &graphql.Field{
				Type: graphql.NewNonNull(productType),
				Args: graphql.FieldConfigArgument{
					"input": &graphql.ArgumentConfig{Type: graphql.NewNonNull(updateProductInput)},
				},
				Resolve: func(p graphql.ResolveParams) (any, error) {
					input := inputArg(p)
					callerID := deliverycontext.GetCallerID(p.Context)
					product, err := productUC.UpdateProduct(p.Context, callerID, &usecase.UpdateProductInput{
						ID:   stringField(input, "id"),
						Body: updateBody(input["body"]),
					})
					if err != nil {
						return nil, err
					}

					return productPayload(product), nil
				},
			},
		},
	})

	schema, err := graphql.NewSchema(graphql.SchemaConfig{
		Query:    queryType,
		Mutation: mutationType,
	})
	if err != nil {
		return graphql.Schema{}, errors.Wrap(err, "failed to build graphql schema")
	}

	return schema, nil
}

func inputArg(p graphql.ResolveParams) map[string]any {
	input, _ := p.Args["input"].(map[string]any)

	return input
}

func stringField(fields map[string]any, name string) string {
	value, _ := fields[name].(string)

	return value
}

func updateBody(raw any) usecase.UpdateProductBody {
	body := usecase.UpdateProductBody{}
	fields, ok := raw.(map[string]any)
	if !ok {
		return body
	}

	if name, ok := fields["name"].(string); ok {
		body.Name = name
	}
	if description, ok := fields["description"].(string); ok {
		body.Description = description
	}

	return body
}

func productPayload(product *entity.Product) map[string]any {
	var ownerID any
	if !product.OwnerID.IsZero() {
		ownerID = product.OwnerID.String()
	}

	return map[string]any{
		"id":          product.ID.String(),
		"name":        product.Name,
		"description": product.Description,
		"ownerId":     ownerID,
		"createdAt":   product.CreatedAt,
		"updatedAt":   product.UpdatedAt,
	}
}
