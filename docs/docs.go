// Code generated by swaggo/swag. DO NOT EDIT.

package docs

import "github.com/swaggo/swag/v2"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "components": {
        "schemas": {
            "data": {
                "properties": {
                    "data": {
                        "$ref": "#/components/schemas/handler.DefaultRuleExistsResponse"
                    }
                },
                "type": "object"
            },
            "dto.ErrorInfo": {
                "properties": {
                    "code": {
                        "type": "string"
                    },
                    "details": {
                        "items": {
                            "$ref": "#/components/schemas/dto.ValidationDetail"
                        },
                        "type": "array",
                        "uniqueItems": false
                    },
                    "help": {
                        "type": "string"
                    },
                    "message": {
                        "type": "string"
                    },
                    "request_id": {
                        "type": "string"
                    },
                    "timestamp": {
                        "type": "string"
                    }
                },
                "type": "object"
            },
            "dto.Meta": {
                "properties": {
                    "page": {
                        "type": "integer"
                    },
                    "page_size": {
                        "type": "integer"
                    },
                    "total": {
                        "type": "integer"
                    },
                    "total_pages": {
                        "type": "integer"
                    }
                },
                "type": "object"
            },
            "dto.Response": {
                "allOf": [
                    {
                        "$ref": "#/components/schemas/error"
                    }
                ],
                "properties": {
                    "data": {},
                    "error": {
                        "$ref": "#/components/schemas/dto.ErrorInfo"
                    },
                    "meta": {
                        "$ref": "#/components/schemas/dto.Meta"
                    },
                    "success": {
                        "type": "boolean"
                    }
                },
                "type": "object"
            },
            "dto.ValidationDetail": {
                "properties": {
                    "field": {
                        "type": "string"
                    },
                    "message": {
                        "type": "string"
                    }
                },
                "type": "object"
            },
            "error": {
                "properties": {
                    "error": {
                        "$ref": "#/components/schemas/dto.ErrorInfo"
                    }
                },
                "type": "object"
            },
            "handler.APIResponse-handler_PingResponse": {
                "properties": {
                    "data": {
                        "$ref": "#/components/schemas/handler.PingResponse"
                    },
                    "error": {
                        "$ref": "#/components/schemas/dto.ErrorInfo"
                    },
                    "meta": {
                        "$ref": "#/components/schemas/dto.Meta"
                    },
                    "success": {
                        "type": "boolean"
                    }
                },
                "type": "object"
            },
            "handler.APIResponse-handler_SystemInfoResponse": {
                "properties": {
                    "data": {
                        "$ref": "#/components/schemas/handler.SystemInfoResponse"
                    },
                    "error": {
                        "$ref": "#/components/schemas/dto.ErrorInfo"
                    },
                    "meta": {
                        "$ref": "#/components/schemas/dto.Meta"
                    },
                    "success": {
                        "type": "boolean"
                    }
                },
                "type": "object"
            },
            "handler.DefaultRuleExistsResponse": {
                "description": "Default rule existence check result",
                "properties": {
                    "exists": {
                        "example": true,
                        "type": "boolean"
                    }
                },
                "type": "object"
            },
            "handler.ErrorResponse": {
                "description": "Standard error response",
                "properties": {
                    "error": {
                        "$ref": "#/components/schemas/dto.ErrorInfo"
                    },
                    "success": {
                        "example": false,
                        "type": "boolean"
                    }
                },
                "type": "object"
            },
            "handler.PingResponse": {
                "properties": {
                    "message": {
                        "example": "pong",
                        "type": "string"
                    },
                    "timestamp": {
                        "example": "2026-01-23T12:00:00Z",
                        "type": "string"
                    }
                },
                "type": "object"
            },
            "handler.SystemInfoResponse": {
                "properties": {
                    "go_version": {
                        "example": "go1.25.5",
                        "type": "string"
                    },
                    "name": {
                        "example": "Meatrics Pricing API",
                        "type": "string"
                    },
                    "uptime": {
                        "example": "1h30m45s",
                        "type": "string"
                    },
                    "version": {
                        "example": "1.0.0",
                        "type": "string"
                    }
                },
                "type": "object"
            },
            "meta": {
                "properties": {
                    "meta": {
                        "$ref": "#/components/schemas/dto.Meta"
                    }
                },
                "type": "object"
            },
            "pricing.AppliedRuleDTO": {
                "properties": {
                    "input_price": {
                        "type": "number"
                    },
                    "output_price": {
                        "type": "number"
                    },
                    "pricing_method": {
                        "type": "string"
                    },
                    "pricing_value": {
                        "type": "number"
                    },
                    "rule_category": {
                        "type": "string"
                    },
                    "rule_id": {
                        "type": "string"
                    },
                    "rule_name": {
                        "type": "string"
                    }
                },
                "type": "object"
            },
            "pricing.CalculateRequest": {
                "properties": {
                    "as_of_date": {
                        "type": "string"
                    },
                    "customer_code": {
                        "maxLength": 50,
                        "type": "string"
                    },
                    "product_code": {
                        "maxLength": 50,
                        "type": "string"
                    }
                },
                "type": "object"
            },
            "pricing.CalculationResponse": {
                "properties": {
                    "as_of_date": {
                        "type": "string"
                    },
                    "item_count": {
                        "type": "integer"
                    },
                    "items": {
                        "items": {
                            "$ref": "#/components/schemas/pricing.ItemCalculationResponse"
                        },
                        "type": "array",
                        "uniqueItems": false
                    },
                    "session_id": {
                        "type": "string"
                    }
                },
                "type": "object"
            },
            "pricing.CreateRuleRequest": {
                "properties": {
                    "condition_type": {
                        "enum": [
                            "ALL_PRODUCTS",
                            "CATEGORY",
                            "PRODUCT_CODE"
                        ],
                        "type": "string"
                    },
                    "condition_value": {
                        "maxLength": 100,
                        "type": "string"
                    },
                    "customer_code": {
                        "maxLength": 50,
                        "type": "string"
                    },
                    "is_active": {
                        "type": "boolean"
                    },
                    "layer_order": {
                        "type": "integer"
                    },
                    "pricing_method": {
                        "enum": [
                            "COST_PLUS_PERCENT",
                            "COST_PLUS_FIXED",
                            "FIXED_PRICE",
                            "MAINTAIN_GP_PERCENT"
                        ],
                        "type": "string"
                    },
                    "pricing_value": {
                        "type": "number"
                    },
                    "priority": {
                        "type": "integer"
                    },
                    "rule_category": {
                        "enum": [
                            "BASE_PRICE",
                            "CUSTOMER_ADJUSTMENT",
                            "PRODUCT_ADJUSTMENT",
                            "PROMOTIONAL"
                        ],
                        "type": "string"
                    },
                    "rule_name": {
                        "maxLength": 200,
                        "minLength": 1,
                        "type": "string"
                    },
                    "valid_from": {
                        "type": "string"
                    },
                    "valid_to": {
                        "type": "string"
                    }
                },
                "required": [
                    "condition_type",
                    "pricing_method",
                    "rule_category",
                    "rule_name"
                ],
                "type": "object"
            },
            "pricing.ItemCalculationResponse": {
                "properties": {
                    "applied_rules": {
                        "items": {
                            "$ref": "#/components/schemas/pricing.AppliedRuleDTO"
                        },
                        "type": "array",
                        "uniqueItems": false
                    },
                    "calculated_price": {
                        "type": "number"
                    },
                    "cost": {
                        "type": "number"
                    },
                    "customer_code": {
                        "type": "string"
                    },
                    "description": {
                        "type": "string"
                    },
                    "product_code": {
                        "type": "string"
                    }
                },
                "type": "object"
            },
            "pricing.LineItemResponse": {
                "properties": {
                    "customer_code": {
                        "type": "string"
                    },
                    "customer_name": {
                        "type": "string"
                    },
                    "customer_rating": {
                        "type": "string"
                    },
                    "id": {
                        "type": "string"
                    },
                    "incoming_cost": {
                        "type": "number"
                    },
                    "last_amount": {
                        "type": "number"
                    },
                    "last_cost": {
                        "type": "number"
                    },
                    "last_gross_profit": {
                        "type": "number"
                    },
                    "primary_group": {
                        "type": "string"
                    },
                    "product_code": {
                        "type": "string"
                    },
                    "product_description": {
                        "type": "string"
                    },
                    "total_amount": {
                        "type": "number"
                    },
                    "total_cost": {
                        "type": "number"
                    },
                    "total_quantity": {
                        "type": "number"
                    }
                },
                "type": "object"
            },
            "pricing.PreviewRuleRequest": {
                "properties": {
                    "as_of_date": {
                        "type": "string"
                    },
                    "condition_type": {
                        "enum": [
                            "ALL_PRODUCTS",
                            "CATEGORY",
                            "PRODUCT_CODE"
                        ],
                        "type": "string"
                    },
                    "condition_value": {
                        "maxLength": 100,
                        "type": "string"
                    },
                    "customer_code": {
                        "maxLength": 50,
                        "type": "string"
                    },
                    "is_active": {
                        "type": "boolean"
                    },
                    "layer_order": {
                        "type": "integer"
                    },
                    "pricing_method": {
                        "enum": [
                            "COST_PLUS_PERCENT",
                            "COST_PLUS_FIXED",
                            "FIXED_PRICE",
                            "MAINTAIN_GP_PERCENT"
                        ],
                        "type": "string"
                    },
                    "pricing_value": {
                        "type": "number"
                    },
                    "priority": {
                        "type": "integer"
                    },
                    "rule_category": {
                        "enum": [
                            "BASE_PRICE",
                            "CUSTOMER_ADJUSTMENT",
                            "PRODUCT_ADJUSTMENT",
                            "PROMOTIONAL"
                        ],
                        "type": "string"
                    },
                    "rule_id": {
                        "type": "string"
                    },
                    "rule_name": {
                        "maxLength": 200,
                        "minLength": 1,
                        "type": "string"
                    },
                    "valid_from": {
                        "type": "string"
                    },
                    "valid_to": {
                        "type": "string"
                    }
                },
                "required": [
                    "condition_type",
                    "pricing_method",
                    "rule_category",
                    "rule_name"
                ],
                "type": "object"
            },
            "pricing.PricePreview": {
                "properties": {
                    "current_price": {
                        "type": "number"
                    },
                    "customer_code": {
                        "type": "string"
                    },
                    "price_change": {
                        "type": "number"
                    },
                    "product_code": {
                        "type": "string"
                    },
                    "product_description": {
                        "type": "string"
                    },
                    "proposed_price": {
                        "type": "number"
                    }
                },
                "type": "object"
            },
            "pricing.RulePreviewResponse": {
                "properties": {
                    "affected_item_count": {
                        "type": "integer"
                    },
                    "previews": {
                        "items": {
                            "$ref": "#/components/schemas/pricing.PricePreview"
                        },
                        "type": "array",
                        "uniqueItems": false
                    }
                },
                "type": "object"
            },
            "pricing.RuleResponse": {
                "properties": {
                    "condition_type": {
                        "type": "string"
                    },
                    "condition_value": {
                        "type": "string"
                    },
                    "created_at": {
                        "type": "string"
                    },
                    "customer_code": {
                        "type": "string"
                    },
                    "id": {
                        "type": "string"
                    },
                    "is_active": {
                        "type": "boolean"
                    },
                    "layer_order": {
                        "type": "integer"
                    },
                    "pricing_method": {
                        "type": "string"
                    },
                    "pricing_value": {
                        "type": "number"
                    },
                    "priority": {
                        "type": "integer"
                    },
                    "rule_category": {
                        "type": "string"
                    },
                    "rule_name": {
                        "type": "string"
                    },
                    "updated_at": {
                        "type": "string"
                    },
                    "valid_from": {
                        "type": "string"
                    },
                    "valid_to": {
                        "type": "string"
                    },
                    "version": {
                        "type": "integer"
                    }
                },
                "type": "object"
            },
            "pricing.SessionResponse": {
                "properties": {
                    "as_of_date": {
                        "type": "string"
                    },
                    "created_at": {
                        "type": "string"
                    },
                    "id": {
                        "type": "string"
                    },
                    "item_count": {
                        "type": "integer"
                    }
                },
                "type": "object"
            },
            "pricing.SnapshotResponse": {
                "properties": {
                    "application_order": {
                        "type": "integer"
                    },
                    "applied_at": {
                        "type": "string"
                    },
                    "customer_code": {
                        "type": "string"
                    },
                    "id": {
                        "type": "string"
                    },
                    "input_price": {
                        "type": "number"
                    },
                    "is_rebate": {
                        "type": "boolean"
                    },
                    "output_price": {
                        "type": "number"
                    },
                    "pricing_method": {
                        "type": "string"
                    },
                    "pricing_value": {
                        "type": "number"
                    },
                    "product_code": {
                        "type": "string"
                    },
                    "rule_id": {
                        "type": "string"
                    },
                    "rule_name": {
                        "type": "string"
                    },
                    "session_id": {
                        "type": "string"
                    }
                },
                "type": "object"
            },
            "pricing.UpdateRuleRequest": {
                "properties": {
                    "condition_type": {
                        "enum": [
                            "ALL_PRODUCTS",
                            "CATEGORY",
                            "PRODUCT_CODE"
                        ],
                        "type": "string"
                    },
                    "condition_value": {
                        "maxLength": 100,
                        "type": "string"
                    },
                    "customer_code": {
                        "maxLength": 50,
                        "type": "string"
                    },
                    "is_active": {
                        "type": "boolean"
                    },
                    "layer_order": {
                        "type": "integer"
                    },
                    "pricing_method": {
                        "enum": [
                            "COST_PLUS_PERCENT",
                            "COST_PLUS_FIXED",
                            "FIXED_PRICE",
                            "MAINTAIN_GP_PERCENT"
                        ],
                        "type": "string"
                    },
                    "pricing_value": {
                        "type": "number"
                    },
                    "priority": {
                        "type": "integer"
                    },
                    "rule_category": {
                        "enum": [
                            "BASE_PRICE",
                            "CUSTOMER_ADJUSTMENT",
                            "PRODUCT_ADJUSTMENT",
                            "PROMOTIONAL"
                        ],
                        "type": "string"
                    },
                    "rule_name": {
                        "maxLength": 200,
                        "minLength": 1,
                        "type": "string"
                    },
                    "valid_from": {
                        "type": "string"
                    },
                    "valid_to": {
                        "type": "string"
                    }
                },
                "required": [
                    "condition_type",
                    "pricing_method",
                    "rule_category",
                    "rule_name"
                ],
                "type": "object"
            },
            "pricing.UpsertLineItemRequest": {
                "properties": {
                    "customer_code": {
                        "maxLength": 50,
                        "type": "string"
                    },
                    "customer_name": {
                        "maxLength": 200,
                        "type": "string"
                    },
                    "customer_rating": {
                        "maxLength": 20,
                        "type": "string"
                    },
                    "incoming_cost": {
                        "type": "number"
                    },
                    "last_amount": {
                        "type": "number"
                    },
                    "last_cost": {
                        "type": "number"
                    },
                    "last_gross_profit": {
                        "type": "number"
                    },
                    "primary_group": {
                        "maxLength": 100,
                        "type": "string"
                    },
                    "product_code": {
                        "maxLength": 50,
                        "type": "string"
                    },
                    "product_description": {
                        "maxLength": 500,
                        "type": "string"
                    },
                    "total_amount": {
                        "type": "number"
                    },
                    "total_cost": {
                        "type": "number"
                    },
                    "total_quantity": {
                        "type": "number"
                    }
                },
                "required": [
                    "customer_code",
                    "product_code"
                ],
                "type": "object"
            },
            "pricing.UpsertLineItemsRequest": {
                "properties": {
                    "items": {
                        "items": {
                            "$ref": "#/components/schemas/pricing.UpsertLineItemRequest"
                        },
                        "maxItems": 5000,
                        "minItems": 1,
                        "type": "array",
                        "uniqueItems": false
                    }
                },
                "required": [
                    "items"
                ],
                "type": "object"
            },
            "pricing.UpsertLineItemsResponse": {
                "properties": {
                    "loaded": {
                        "type": "integer"
                    }
                },
                "type": "object"
            }
        }
    },
    "info": {
        "contact": {
            "email": "support@meatrics.example.com",
            "name": "API Support",
            "url": "https://github.com/meatrics/backend"
        },
        "description": "{{escape .Description}}",
        "license": {
            "name": "Apache 2.0",
            "url": "http://www.apache.org/licenses/LICENSE-2.0.html"
        },
        "termsOfService": "http://swagger.io/terms/",
        "title": "{{.Title}}",
        "version": "{{.Version}}"
    },
    "externalDocs": {
        "description": "OpenAPI",
        "url": "https://swagger.io/resources/open-api/"
    },
    "paths": {
        "/line-items": {
            "get": {
                "description": "Retrieve a paginated list of grouped line items",
                "parameters": [
                    {
                        "description": "Customer code filter",
                        "in": "query",
                        "name": "customer_code",
                        "schema": {
                            "type": "string"
                        }
                    },
                    {
                        "description": "Product code filter",
                        "in": "query",
                        "name": "product_code",
                        "schema": {
                            "type": "string"
                        }
                    },
                    {
                        "description": "Primary group filter",
                        "in": "query",
                        "name": "primary_group",
                        "schema": {
                            "type": "string"
                        }
                    },
                    {
                        "description": "Search keyword",
                        "in": "query",
                        "name": "search",
                        "schema": {
                            "type": "string"
                        }
                    },
                    {
                        "description": "Page number",
                        "in": "query",
                        "name": "page",
                        "schema": {
                            "default": 1,
                            "type": "integer"
                        }
                    },
                    {
                        "description": "Items per page",
                        "in": "query",
                        "name": "page_size",
                        "schema": {
                            "default": 20,
                            "type": "integer"
                        }
                    }
                ],
                "requestBody": {
                    "content": {
                        "application/json": {
                            "schema": {
                                "type": "object"
                            }
                        }
                    }
                },
                "responses": {
                    "200": {
                        "content": {
                            "application/json": {
                                "schema": {
                                    "allOf": [
                                        {
                                            "$ref": "#/components/schemas/error"
                                        }
                                    ],
                                    "properties": {
                                        "data": {},
                                        "error": {
                                            "$ref": "#/components/schemas/dto.ErrorInfo"
                                        },
                                        "meta": {
                                            "$ref": "#/components/schemas/dto.Meta"
                                        },
                                        "success": {
                                            "type": "boolean"
                                        }
                                    },
                                    "type": "object"
                                }
                            }
                        },
                        "description": "OK"
                    },
                    "400": {
                        "content": {
                            "application/json": {
                                "schema": {
                                    "allOf": [
                                        {
                                            "$ref": "#/components/schemas/error"
                                        }
                                    ],
                                    "properties": {
                                        "data": {},
                                        "error": {
                                            "$ref": "#/components/schemas/dto.ErrorInfo"
                                        },
                                        "meta": {
                                            "$ref": "#/components/schemas/dto.Meta"
                                        },
                                        "success": {
                                            "type": "boolean"
                                        }
                                    },
                                    "type": "object"
                                }
                            }
                        },
                        "description": "Bad Request"
                    },
                    "500": {
                        "content": {
                            "application/json": {
                                "schema": {
                                    "allOf": [
                                        {
                                            "$ref": "#/components/schemas/error"
                                        }
                                    ],
                                    "properties": {
                                        "data": {},
                                        "error": {
                                            "$ref": "#/components/schemas/dto.ErrorInfo"
                                        },
                                        "meta": {
                                            "$ref": "#/components/schemas/dto.Meta"
                                        },
                                        "success": {
                                            "type": "boolean"
                                        }
                                    },
                                    "type": "object"
                                }
                            }
                        },
                        "description": "Internal Server Error"
                    }
                },
                "summary": "List line items",
                "tags": [
                    "line-items"
                ]
            }
        },
        "/line-items/batch": {
            "post": {
                "description": "Create or replace grouped line items, upserting on the customer/product pair",
                "requestBody": {
                    "content": {
                        "application/json": {
                            "schema": {
                                "oneOf": [
                                    {
                                        "type": "object"
                                    },
                                    {
                                        "$ref": "#/components/schemas/pricing.UpsertLineItemsRequest",
                                        "summary": "request",
                                        "description": "Line item rows"
                                    }
                                ]
                            }
                        }
                    },
                    "description": "Line item rows",
                    "required": true
                },
                "responses": {
                    "200": {
                        "content": {
                            "application/json": {
                                "schema": {
                                    "allOf": [
                                        {
                                            "$ref": "#/components/schemas/error"
                                        }
                                    ],
                                    "properties": {
                                        "data": {},
                                        "error": {
                                            "$ref": "#/components/schemas/dto.ErrorInfo"
                                        },
                                        "meta": {
                                            "$ref": "#/components/schemas/dto.Meta"
                                        },
                                        "success": {
                                            "type": "boolean"
                                        }
                                    },
                                    "type": "object"
                                }
                            }
                        },
                        "description": "OK"
                    },
                    "400": {
                        "content": {
                            "application/json": {
                                "schema": {
                                    "allOf": [
                                        {
                                            "$ref": "#/components/schemas/error"
                                        }
                                    ],
                                    "properties": {
                                        "data": {},
                                        "error": {
                                            "$ref": "#/components/schemas/dto.ErrorInfo"
                                        },
                                        "meta": {
                                            "$ref": "#/components/schemas/dto.Meta"
                                        },
                                        "success": {
                                            "type": "boolean"
                                        }
                                    },
                                    "type": "object"
                                }
                            }
                        },
                        "description": "Bad Request"
                    },
                    "422": {
                        "content": {
                            "application/json": {
                                "schema": {
                                    "allOf": [
                                        {
                                            "$ref": "#/components/schemas/error"
                                        }
                                    ],
                                    "properties": {
                                        "data": {},
                                        "error": {
                                            "$ref": "#/components/schemas/dto.ErrorInfo"
                                        },
                                        "meta": {
                                            "$ref": "#/components/schemas/dto.Meta"
                                        },
                                        "success": {
                                            "type": "boolean"
                                        }
                                    },
                                    "type": "object"
                                }
                            }
                        },
                        "description": "Unprocessable Entity"
                    },
                    "500": {
                        "content": {
                            "application/json": {
                                "schema": {
                                    "allOf": [
                                        {
                                            "$ref": "#/components/schemas/error"
                                        }
                                    ],
                                    "properties": {
                                        "data": {},
                                        "error": {
                                            "$ref": "#/components/schemas/dto.ErrorInfo"
                                        },
                                        "meta": {
                                            "$ref": "#/components/schemas/dto.Meta"
                                        },
                                        "success": {
                                            "type": "boolean"
                                        }
                                    },
                                    "type": "object"
                                }
                            }
                        },
                        "description": "Internal Server Error"
                    }
                },
                "summary": "Load line items in bulk",
                "tags": [
                    "line-items"
                ]
            }
        },
        "/line-items/{id}": {
            "get": {
                "description": "Retrieve a single grouped line item by its ID",
                "parameters": [
                    {
                        "description": "Line item ID",
                        "in": "path",
                        "name": "id",
                        "required": true,
                        "schema": {
                            "format": "uuid",
                            "type": "string"
                        }
                    }
                ],
                "requestBody": {
                    "content": {
                        "application/json": {
                            "schema": {
                                "type": "object"
                            }
                        }
                    }
                },
                "responses": {
                    "200": {
                        "content": {
                            "application/json": {
                                "schema": {
                                    "allOf": [
                                        {
                                            "$ref": "#/components/schemas/error"
                                        }
                                    ],
                                    "properties": {
                                        "data": {},
                                        "error": {
                                            "$ref": "#/components/schemas/dto.ErrorInfo"
                                        },
                                        "meta": {
                                            "$ref": "#/components/schemas/dto.Meta"
                                        },
                                        "success": {
                                            "type": "boolean"
                                        }
                                    },
                                    "type": "object"
                                }
                            }
                        },
                        "description": "OK"
                    },
                    "400": {
                        "content": {
                            "application/json": {
                                "schema": {
                                    "allOf": [
                                        {
                                            "$ref": "#/components/schemas/error"
                                        }
                                    ],
                                    "properties": {
                                        "data": {},
                                        "error": {
                                            "$ref": "#/components/schemas/dto.ErrorInfo"
                                        },
                                        "meta": {
                                            "$ref": "#/components/schemas/dto.Meta"
                                        },
                                        "success": {
                                            "type": "boolean"
                                        }
                                    },
                                    "type": "object"
                                }
                            }
                        },
                        "description": "Bad Request"
                    },
                    "404": {
                        "content": {
                            "application/json": {
                                "schema": {
                                    "allOf": [
                                        {
                                            "$ref": "#/components/schemas/error"
                                        }
                                    ],
                                    "properties": {
                                        "data": {},
                                        "error": {
                                            "$ref": "#/components/schemas/dto.ErrorInfo"
                                        },
                                        "meta": {
                                            "$ref": "#/components/schemas/dto.Meta"
                                        },
                                        "success": {
                                            "type": "boolean"
                                        }
                                    },
                                    "type": "object"
                                }
                            }
                        },
                        "description": "Not Found"
                    },
                    "500": {
                        "content": {
                            "application/json": {
                                "schema": {
                                    "allOf": [
                                        {
                                            "$ref": "#/components/schemas/error"
                                        }
                                    ],
                                    "properties": {
                                        "data": {},
                                        "error": {
                                            "$ref": "#/components/schemas/dto.ErrorInfo"
                                        },
                                        "meta": {
                                            "$ref": "#/components/schemas/dto.Meta"
                                        },
                                        "success": {
                                            "type": "boolean"
                                        }
                                    },
                                    "type": "object"
                                }
                            }
                        },
                        "description": "Internal Server Error"
                    }
                },
                "summary": "Get line item by ID",
                "tags": [
                    "line-items"
                ]
            }
        },
        "/pricing/calculations": {
            "post": {
                "description": "Calculate prices for every line item, or for a single customer/product pair when both codes are supplied. Each run persists a session with per-rule snapshots.",
                "requestBody": {
                    "content": {
                        "application/json": {
                            "schema": {
                                "oneOf": [
                                    {
                                        "type": "object"
                                    },
                                    {
                                        "$ref": "#/components/schemas/pricing.CalculateRequest",
                                        "summary": "request",
                                        "description": "Calculation request"
                                    }
                                ]
                            }
                        }
                    },
                    "description": "Calculation request"
                },
                "responses": {
                    "200": {
                        "content": {
                            "application/json": {
                                "schema": {
                                    "allOf": [
                                        {
                                            "$ref": "#/components/schemas/error"
                                        }
                                    ],
                                    "properties": {
                                        "data": {},
                                        "error": {
                                            "$ref": "#/components/schemas/dto.ErrorInfo"
                                        },
                                        "meta": {
                                            "$ref": "#/components/schemas/dto.Meta"
                                        },
                                        "success": {
                                            "type": "boolean"
                                        }
                                    },
                                    "type": "object"
                                }
                            }
                        },
                        "description": "OK"
                    },
                    "400": {
                        "content": {
                            "application/json": {
                                "schema": {
                                    "allOf": [
                                        {
                                            "$ref": "#/components/schemas/error"
                                        }
                                    ],
                                    "properties": {
                                        "data": {},
                                        "error": {
                                            "$ref": "#/components/schemas/dto.ErrorInfo"
                                        },
                                        "meta": {
                                            "$ref": "#/components/schemas/dto.Meta"
                                        },
                                        "success": {
                                            "type": "boolean"
                                        }
                                    },
                                    "type": "object"
                                }
                            }
                        },
                        "description": "Bad Request"
                    },
                    "404": {
                        "content": {
                            "application/json": {
                                "schema": {
                                    "allOf": [
                                        {
                                            "$ref": "#/components/schemas/error"
                                        }
                                    ],
                                    "properties": {
                                        "data": {},
                                        "error": {
                                            "$ref": "#/components/schemas/dto.ErrorInfo"
                                        },
                                        "meta": {
                                            "$ref": "#/components/schemas/dto.Meta"
                                        },
                                        "success": {
                                            "type": "boolean"
                                        }
                                    },
                                    "type": "object"
                                }
                            }
                        },
                        "description": "Not Found"
                    },
                    "500": {
                        "content": {
                            "application/json": {
                                "schema": {
                                    "allOf": [
                                        {
                                            "$ref": "#/components/schemas/error"
                                        }
                                    ],
                                    "properties": {
                                        "data": {},
                                        "error": {
                                            "$ref": "#/components/schemas/dto.ErrorInfo"
                                        },
                                        "meta": {
                                            "$ref": "#/components/schemas/dto.Meta"
                                        },
                                        "success": {
                                            "type": "boolean"
                                        }
                                    },
                                    "type": "object"
                                }
                            }
                        },
                        "description": "Internal Server Error"
                    }
                },
                "summary": "Run a pricing calculation",
                "tags": [
                    "calculations"
                ]
            }
        },
        "/pricing/calculations/sessions": {
            "get": {
                "description": "Retrieve recent calculation sessions, newest first",
                "parameters": [
                    {
                        "description": "Maximum sessions to return",
                        "in": "query",
                        "name": "limit",
                        "schema": {
                            "default": 20,
                            "type": "integer"
                        }
                    }
                ],
                "requestBody": {
                    "content": {
                        "application/json": {
                            "schema": {
                                "type": "object"
                            }
                        }
                    }
                },
                "responses": {
                    "200": {
                        "content": {
                            "application/json": {
                                "schema": {
                                    "allOf": [
                                        {
                                            "$ref": "#/components/schemas/error"
                                        }
                                    ],
                                    "properties": {
                                        "data": {},
                                        "error": {
                                            "$ref": "#/components/schemas/dto.ErrorInfo"
                                        },
                                        "meta": {
                                            "$ref": "#/components/schemas/dto.Meta"
                                        },
                                        "success": {
                                            "type": "boolean"
                                        }
                                    },
                                    "type": "object"
                                }
                            }
                        },
                        "description": "OK"
                    },
                    "400": {
                        "content": {
                            "application/json": {
                                "schema": {
                                    "allOf": [
                                        {
                                            "$ref": "#/components/schemas/error"
                                        }
                                    ],
                                    "properties": {
                                        "data": {},
                                        "error": {
                                            "$ref": "#/components/schemas/dto.ErrorInfo"
                                        },
                                        "meta": {
                                            "$ref": "#/components/schemas/dto.Meta"
                                        },
                                        "success": {
                                            "type": "boolean"
                                        }
                                    },
                                    "type": "object"
                                }
                            }
                        },
                        "description": "Bad Request"
                    },
                    "500": {
                        "content": {
                            "application/json": {
                                "schema": {
                                    "allOf": [
                                        {
                                            "$ref": "#/components/schemas/error"
                                        }
                                    ],
                                    "properties": {
                                        "data": {},
                                        "error": {
                                            "$ref": "#/components/schemas/dto.ErrorInfo"
                                        },
                                        "meta": {
                                            "$ref": "#/components/schemas/dto.Meta"
                                        },
                                        "success": {
                                            "type": "boolean"
                                        }
                                    },
                                    "type": "object"
                                }
                            }
                        },
                        "description": "Internal Server Error"
                    }
                },
                "summary": "List pricing sessions",
                "tags": [
                    "calculations"
                ]
            }
        },
        "/pricing/calculations/sessions/{id}/snapshots": {
            "get": {
                "description": "Retrieve the applied rule snapshots recorded during one calculation session",
                "parameters": [
                    {
                        "description": "Session ID",
                        "in": "path",
                        "name": "id",
                        "required": true,
                        "schema": {
                            "format": "uuid",
                            "type": "string"
                        }
                    }
                ],
                "requestBody": {
                    "content": {
                        "application/json": {
                            "schema": {
                                "type": "object"
                            }
                        }
                    }
                },
                "responses": {
                    "200": {
                        "content": {
                            "application/json": {
                                "schema": {
                                    "allOf": [
                                        {
                                            "$ref": "#/components/schemas/error"
                                        }
                                    ],
                                    "properties": {
                                        "data": {},
                                        "error": {
                                            "$ref": "#/components/schemas/dto.ErrorInfo"
                                        },
                                        "meta": {
                                            "$ref": "#/components/schemas/dto.Meta"
                                        },
                                        "success": {
                                            "type": "boolean"
                                        }
                                    },
                                    "type": "object"
                                }
                            }
                        },
                        "description": "OK"
                    },
                    "400": {
                        "content": {
                            "application/json": {
                                "schema": {
                                    "allOf": [
                                        {
                                            "$ref": "#/components/schemas/error"
                                        }
                                    ],
                                    "properties": {
                                        "data": {},
                                        "error": {
                                            "$ref": "#/components/schemas/dto.ErrorInfo"
                                        },
                                        "meta": {
                                            "$ref": "#/components/schemas/dto.Meta"
                                        },
                                        "success": {
                                            "type": "boolean"
                                        }
                                    },
                                    "type": "object"
                                }
                            }
                        },
                        "description": "Bad Request"
                    },
                    "404": {
                        "content": {
                            "application/json": {
                                "schema": {
                                    "allOf": [
                                        {
                                            "$ref": "#/components/schemas/error"
                                        }
                                    ],
                                    "properties": {
                                        "data": {},
                                        "error": {
                                            "$ref": "#/components/schemas/dto.ErrorInfo"
                                        },
                                        "meta": {
                                            "$ref": "#/components/schemas/dto.Meta"
                                        },
                                        "success": {
                                            "type": "boolean"
                                        }
                                    },
                                    "type": "object"
                                }
                            }
                        },
                        "description": "Not Found"
                    },
                    "500": {
                        "content": {
                            "application/json": {
                                "schema": {
                                    "allOf": [
                                        {
                                            "$ref": "#/components/schemas/error"
                                        }
                                    ],
                                    "properties": {
                                        "data": {},
                                        "error": {
                                            "$ref": "#/components/schemas/dto.ErrorInfo"
                                        },
                                        "meta": {
                                            "$ref": "#/components/schemas/dto.Meta"
                                        },
                                        "success": {
                                            "type": "boolean"
                                        }
                                    },
                                    "type": "object"
                                }
                            }
                        },
                        "description": "Internal Server Error"
                    }
                },
                "summary": "Get snapshots for a session",
                "tags": [
                    "calculations"
                ]
            }
        },
        "/pricing/rules": {
            "get": {
                "description": "Retrieve a paginated list of pricing rules",
                "parameters": [
                    {
                        "description": "Customer code filter",
                        "in": "query",
                        "name": "customer_code",
                        "schema": {
                            "type": "string"
                        }
                    },
                    {
                        "description": "Rule category filter",
                        "in": "query",
                        "name": "rule_category",
                        "schema": {
                            "enum": [
                                "BASE_PRICE",
                                "CUSTOMER_ADJUSTMENT",
                                "PRODUCT_ADJUSTMENT",
                                "PROMOTIONAL"
                            ],
                            "type": "string"
                        }
                    },
                    {
                        "description": "Only active rules",
                        "in": "query",
                        "name": "active_only",
                        "schema": {
                            "type": "boolean"
                        }
                    },
                    {
                        "description": "Page number",
                        "in": "query",
                        "name": "page",
                        "schema": {
                            "default": 1,
                            "type": "integer"
                        }
                    },
                    {
                        "description": "Items per page",
                        "in": "query",
                        "name": "page_size",
                        "schema": {
                            "default": 20,
                            "type": "integer"
                        }
                    }
                ],
                "requestBody": {
                    "content": {
                        "application/json": {
                            "schema": {
                                "type": "object"
                            }
                        }
                    }
                },
                "responses": {
                    "200": {
                        "content": {
                            "application/json": {
                                "schema": {
                                    "allOf": [
                                        {
                                            "$ref": "#/components/schemas/error"
                                        }
                                    ],
                                    "properties": {
                                        "data": {},
                                        "error": {
                                            "$ref": "#/components/schemas/dto.ErrorInfo"
                                        },
                                        "meta": {
                                            "$ref": "#/components/schemas/dto.Meta"
                                        },
                                        "success": {
                                            "type": "boolean"
                                        }
                                    },
                                    "type": "object"
                                }
                            }
                        },
                        "description": "OK"
                    },
                    "400": {
                        "content": {
                            "application/json": {
                                "schema": {
                                    "allOf": [
                                        {
                                            "$ref": "#/components/schemas/error"
                                        }
                                    ],
                                    "properties": {
                                        "data": {},
                                        "error": {
                                            "$ref": "#/components/schemas/dto.ErrorInfo"
                                        },
                                        "meta": {
                                            "$ref": "#/components/schemas/dto.Meta"
                                        },
                                        "success": {
                                            "type": "boolean"
                                        }
                                    },
                                    "type": "object"
                                }
                            }
                        },
                        "description": "Bad Request"
                    },
                    "500": {
                        "content": {
                            "application/json": {
                                "schema": {
                                    "allOf": [
                                        {
                                            "$ref": "#/components/schemas/error"
                                        }
                                    ],
                                    "properties": {
                                        "data": {},
                                        "error": {
                                            "$ref": "#/components/schemas/dto.ErrorInfo"
                                        },
                                        "meta": {
                                            "$ref": "#/components/schemas/dto.Meta"
                                        },
                                        "success": {
                                            "type": "boolean"
                                        }
                                    },
                                    "type": "object"
                                }
                            }
                        },
                        "description": "Internal Server Error"
                    }
                },
                "summary": "List pricing rules",
                "tags": [
                    "pricing-rules"
                ]
            },
            "post": {
                "description": "Create a new pricing rule in one of the four rule categories.",
                "requestBody": {
                    "content": {
                        "application/json": {
                            "schema": {
                                "oneOf": [
                                    {
                                        "type": "object"
                                    },
                                    {
                                        "$ref": "#/components/schemas/pricing.CreateRuleRequest",
                                        "summary": "request",
                                        "description": "Rule creation request"
                                    }
                                ]
                            }
                        }
                    },
                    "description": "Rule creation request",
                    "required": true
                },
                "responses": {
                    "201": {
                        "content": {
                            "application/json": {
                                "schema": {
                                    "allOf": [
                                        {
                                            "$ref": "#/components/schemas/error"
                                        }
                                    ],
                                    "properties": {
                                        "data": {},
                                        "error": {
                                            "$ref": "#/components/schemas/dto.ErrorInfo"
                                        },
                                        "meta": {
                                            "$ref": "#/components/schemas/dto.Meta"
                                        },
                                        "success": {
                                            "type": "boolean"
                                        }
                                    },
                                    "type": "object"
                                }
                            }
                        },
                        "description": "Created"
                    },
                    "400": {
                        "content": {
                            "application/json": {
                                "schema": {
                                    "allOf": [
                                        {
                                            "$ref": "#/components/schemas/error"
                                        }
                                    ],
                                    "properties": {
                                        "data": {},
                                        "error": {
                                            "$ref": "#/components/schemas/dto.ErrorInfo"
                                        },
                                        "meta": {
                                            "$ref": "#/components/schemas/dto.Meta"
                                        },
                                        "success": {
                                            "type": "boolean"
                                        }
                                    },
                                    "type": "object"
                                }
                            }
                        },
                        "description": "Bad Request"
                    },
                    "409": {
                        "content": {
                            "application/json": {
                                "schema": {
                                    "allOf": [
                                        {
                                            "$ref": "#/components/schemas/error"
                                        }
                                    ],
                                    "properties": {
                                        "data": {},
                                        "error": {
                                            "$ref": "#/components/schemas/dto.ErrorInfo"
                                        },
                                        "meta": {
                                            "$ref": "#/components/schemas/dto.Meta"
                                        },
                                        "success": {
                                            "type": "boolean"
                                        }
                                    },
                                    "type": "object"
                                }
                            }
                        },
                        "description": "Conflict"
                    },
                    "500": {
                        "content": {
                            "application/json": {
                                "schema": {
                                    "allOf": [
                                        {
                                            "$ref": "#/components/schemas/error"
                                        }
                                    ],
                                    "properties": {
                                        "data": {},
                                        "error": {
                                            "$ref": "#/components/schemas/dto.ErrorInfo"
                                        },
                                        "meta": {
                                            "$ref": "#/components/schemas/dto.Meta"
                                        },
                                        "success": {
                                            "type": "boolean"
                                        }
                                    },
                                    "type": "object"
                                }
                            }
                        },
                        "description": "Internal Server Error"
                    }
                },
                "summary": "Create a pricing rule",
                "tags": [
                    "pricing-rules"
                ]
            }
        },
        "/pricing/rules/default/exists": {
            "get": {
                "description": "Report whether an all-products fallback base price rule exists",
                "requestBody": {
                    "content": {
                        "application/json": {
                            "schema": {
                                "type": "object"
                            }
                        }
                    }
                },
                "responses": {
                    "200": {
                        "content": {
                            "application/json": {
                                "schema": {
                                    "allOf": [
                                        {
                                            "$ref": "#/components/schemas/error"
                                        }
                                    ],
                                    "properties": {
                                        "data": {},
                                        "error": {
                                            "$ref": "#/components/schemas/dto.ErrorInfo"
                                        },
                                        "meta": {
                                            "$ref": "#/components/schemas/dto.Meta"
                                        },
                                        "success": {
                                            "type": "boolean"
                                        }
                                    },
                                    "type": "object"
                                }
                            }
                        },
                        "description": "OK"
                    },
                    "500": {
                        "content": {
                            "application/json": {
                                "schema": {
                                    "allOf": [
                                        {
                                            "$ref": "#/components/schemas/error"
                                        }
                                    ],
                                    "properties": {
                                        "data": {},
                                        "error": {
                                            "$ref": "#/components/schemas/dto.ErrorInfo"
                                        },
                                        "meta": {
                                            "$ref": "#/components/schemas/dto.Meta"
                                        },
                                        "success": {
                                            "type": "boolean"
                                        }
                                    },
                                    "type": "object"
                                }
                            }
                        },
                        "description": "Internal Server Error"
                    }
                },
                "summary": "Check for the default base price rule",
                "tags": [
                    "pricing-rules"
                ]
            }
        },
        "/pricing/rules/preview": {
            "post": {
                "description": "Project the price impact of a candidate rule across matching line items without saving it.",
                "requestBody": {
                    "content": {
                        "application/json": {
                            "schema": {
                                "oneOf": [
                                    {
                                        "type": "object"
                                    },
                                    {
                                        "$ref": "#/components/schemas/pricing.PreviewRuleRequest",
                                        "summary": "request",
                                        "description": "Rule preview request"
                                    }
                                ]
                            }
                        }
                    },
                    "description": "Rule preview request",
                    "required": true
                },
                "responses": {
                    "200": {
                        "content": {
                            "application/json": {
                                "schema": {
                                    "allOf": [
                                        {
                                            "$ref": "#/components/schemas/error"
                                        }
                                    ],
                                    "properties": {
                                        "data": {},
                                        "error": {
                                            "$ref": "#/components/schemas/dto.ErrorInfo"
                                        },
                                        "meta": {
                                            "$ref": "#/components/schemas/dto.Meta"
                                        },
                                        "success": {
                                            "type": "boolean"
                                        }
                                    },
                                    "type": "object"
                                }
                            }
                        },
                        "description": "OK"
                    },
                    "400": {
                        "content": {
                            "application/json": {
                                "schema": {
                                    "allOf": [
                                        {
                                            "$ref": "#/components/schemas/error"
                                        }
                                    ],
                                    "properties": {
                                        "data": {},
                                        "error": {
                                            "$ref": "#/components/schemas/dto.ErrorInfo"
                                        },
                                        "meta": {
                                            "$ref": "#/components/schemas/dto.Meta"
                                        },
                                        "success": {
                                            "type": "boolean"
                                        }
                                    },
                                    "type": "object"
                                }
                            }
                        },
                        "description": "Bad Request"
                    },
                    "500": {
                        "content": {
                            "application/json": {
                                "schema": {
                                    "allOf": [
                                        {
                                            "$ref": "#/components/schemas/error"
                                        }
                                    ],
                                    "properties": {
                                        "data": {},
                                        "error": {
                                            "$ref": "#/components/schemas/dto.ErrorInfo"
                                        },
                                        "meta": {
                                            "$ref": "#/components/schemas/dto.Meta"
                                        },
                                        "success": {
                                            "type": "boolean"
                                        }
                                    },
                                    "type": "object"
                                }
                            }
                        },
                        "description": "Internal Server Error"
                    }
                },
                "summary": "Preview a pricing rule",
                "tags": [
                    "pricing-rules"
                ]
            }
        },
        "/pricing/rules/{id}": {
            "delete": {
                "description": "Delete a pricing rule. The last fallback base price rule cannot be deleted.",
                "parameters": [
                    {
                        "description": "Rule ID",
                        "in": "path",
                        "name": "id",
                        "required": true,
                        "schema": {
                            "format": "uuid",
                            "type": "string"
                        }
                    }
                ],
                "requestBody": {
                    "content": {
                        "application/json": {
                            "schema": {
                                "type": "object"
                            }
                        }
                    }
                },
                "responses": {
                    "204": {
                        "description": "No Content"
                    },
                    "400": {
                        "content": {
                            "application/json": {
                                "schema": {
                                    "allOf": [
                                        {
                                            "$ref": "#/components/schemas/error"
                                        }
                                    ],
                                    "properties": {
                                        "data": {},
                                        "error": {
                                            "$ref": "#/components/schemas/dto.ErrorInfo"
                                        },
                                        "meta": {
                                            "$ref": "#/components/schemas/dto.Meta"
                                        },
                                        "success": {
                                            "type": "boolean"
                                        }
                                    },
                                    "type": "object"
                                }
                            }
                        },
                        "description": "Bad Request"
                    },
                    "404": {
                        "content": {
                            "application/json": {
                                "schema": {
                                    "allOf": [
                                        {
                                            "$ref": "#/components/schemas/error"
                                        }
                                    ],
                                    "properties": {
                                        "data": {},
                                        "error": {
                                            "$ref": "#/components/schemas/dto.ErrorInfo"
                                        },
                                        "meta": {
                                            "$ref": "#/components/schemas/dto.Meta"
                                        },
                                        "success": {
                                            "type": "boolean"
                                        }
                                    },
                                    "type": "object"
                                }
                            }
                        },
                        "description": "Not Found"
                    },
                    "422": {
                        "content": {
                            "application/json": {
                                "schema": {
                                    "allOf": [
                                        {
                                            "$ref": "#/components/schemas/error"
                                        }
                                    ],
                                    "properties": {
                                        "data": {},
                                        "error": {
                                            "$ref": "#/components/schemas/dto.ErrorInfo"
                                        },
                                        "meta": {
                                            "$ref": "#/components/schemas/dto.Meta"
                                        },
                                        "success": {
                                            "type": "boolean"
                                        }
                                    },
                                    "type": "object"
                                }
                            }
                        },
                        "description": "Unprocessable Entity"
                    },
                    "500": {
                        "content": {
                            "application/json": {
                                "schema": {
                                    "allOf": [
                                        {
                                            "$ref": "#/components/schemas/error"
                                        }
                                    ],
                                    "properties": {
                                        "data": {},
                                        "error": {
                                            "$ref": "#/components/schemas/dto.ErrorInfo"
                                        },
                                        "meta": {
                                            "$ref": "#/components/schemas/dto.Meta"
                                        },
                                        "success": {
                                            "type": "boolean"
                                        }
                                    },
                                    "type": "object"
                                }
                            }
                        },
                        "description": "Internal Server Error"
                    }
                },
                "summary": "Delete a pricing rule",
                "tags": [
                    "pricing-rules"
                ]
            },
            "get": {
                "description": "Retrieve a pricing rule by its ID",
                "parameters": [
                    {
                        "description": "Rule ID",
                        "in": "path",
                        "name": "id",
                        "required": true,
                        "schema": {
                            "format": "uuid",
                            "type": "string"
                        }
                    }
                ],
                "requestBody": {
                    "content": {
                        "application/json": {
                            "schema": {
                                "type": "object"
                            }
                        }
                    }
                },
                "responses": {
                    "200": {
                        "content": {
                            "application/json": {
                                "schema": {
                                    "allOf": [
                                        {
                                            "$ref": "#/components/schemas/error"
                                        }
                                    ],
                                    "properties": {
                                        "data": {},
                                        "error": {
                                            "$ref": "#/components/schemas/dto.ErrorInfo"
                                        },
                                        "meta": {
                                            "$ref": "#/components/schemas/dto.Meta"
                                        },
                                        "success": {
                                            "type": "boolean"
                                        }
                                    },
                                    "type": "object"
                                }
                            }
                        },
                        "description": "OK"
                    },
                    "400": {
                        "content": {
                            "application/json": {
                                "schema": {
                                    "allOf": [
                                        {
                                            "$ref": "#/components/schemas/error"
                                        }
                                    ],
                                    "properties": {
                                        "data": {},
                                        "error": {
                                            "$ref": "#/components/schemas/dto.ErrorInfo"
                                        },
                                        "meta": {
                                            "$ref": "#/components/schemas/dto.Meta"
                                        },
                                        "success": {
                                            "type": "boolean"
                                        }
                                    },
                                    "type": "object"
                                }
                            }
                        },
                        "description": "Bad Request"
                    },
                    "404": {
                        "content": {
                            "application/json": {
                                "schema": {
                                    "allOf": [
                                        {
                                            "$ref": "#/components/schemas/error"
                                        }
                                    ],
                                    "properties": {
                                        "data": {},
                                        "error": {
                                            "$ref": "#/components/schemas/dto.ErrorInfo"
                                        },
                                        "meta": {
                                            "$ref": "#/components/schemas/dto.Meta"
                                        },
                                        "success": {
                                            "type": "boolean"
                                        }
                                    },
                                    "type": "object"
                                }
                            }
                        },
                        "description": "Not Found"
                    },
                    "500": {
                        "content": {
                            "application/json": {
                                "schema": {
                                    "allOf": [
                                        {
                                            "$ref": "#/components/schemas/error"
                                        }
                                    ],
                                    "properties": {
                                        "data": {},
                                        "error": {
                                            "$ref": "#/components/schemas/dto.ErrorInfo"
                                        },
                                        "meta": {
                                            "$ref": "#/components/schemas/dto.Meta"
                                        },
                                        "success": {
                                            "type": "boolean"
                                        }
                                    },
                                    "type": "object"
                                }
                            }
                        },
                        "description": "Internal Server Error"
                    }
                },
                "summary": "Get pricing rule by ID",
                "tags": [
                    "pricing-rules"
                ]
            },
            "put": {
                "description": "Replace an existing pricing rule's definition",
                "parameters": [
                    {
                        "description": "Rule ID",
                        "in": "path",
                        "name": "id",
                        "required": true,
                        "schema": {
                            "format": "uuid",
                            "type": "string"
                        }
                    }
                ],
                "requestBody": {
                    "content": {
                        "application/json": {
                            "schema": {
                                "oneOf": [
                                    {
                                        "type": "object"
                                    },
                                    {
                                        "$ref": "#/components/schemas/pricing.UpdateRuleRequest",
                                        "summary": "request",
                                        "description": "Rule update request"
                                    }
                                ]
                            }
                        }
                    },
                    "description": "Rule update request",
                    "required": true
                },
                "responses": {
                    "200": {
                        "content": {
                            "application/json": {
                                "schema": {
                                    "allOf": [
                                        {
                                            "$ref": "#/components/schemas/error"
                                        }
                                    ],
                                    "properties": {
                                        "data": {},
                                        "error": {
                                            "$ref": "#/components/schemas/dto.ErrorInfo"
                                        },
                                        "meta": {
                                            "$ref": "#/components/schemas/dto.Meta"
                                        },
                                        "success": {
                                            "type": "boolean"
                                        }
                                    },
                                    "type": "object"
                                }
                            }
                        },
                        "description": "OK"
                    },
                    "400": {
                        "content": {
                            "application/json": {
                                "schema": {
                                    "allOf": [
                                        {
                                            "$ref": "#/components/schemas/error"
                                        }
                                    ],
                                    "properties": {
                                        "data": {},
                                        "error": {
                                            "$ref": "#/components/schemas/dto.ErrorInfo"
                                        },
                                        "meta": {
                                            "$ref": "#/components/schemas/dto.Meta"
                                        },
                                        "success": {
                                            "type": "boolean"
                                        }
                                    },
                                    "type": "object"
                                }
                            }
                        },
                        "description": "Bad Request"
                    },
                    "404": {
                        "content": {
                            "application/json": {
                                "schema": {
                                    "allOf": [
                                        {
                                            "$ref": "#/components/schemas/error"
                                        }
                                    ],
                                    "properties": {
                                        "data": {},
                                        "error": {
                                            "$ref": "#/components/schemas/dto.ErrorInfo"
                                        },
                                        "meta": {
                                            "$ref": "#/components/schemas/dto.Meta"
                                        },
                                        "success": {
                                            "type": "boolean"
                                        }
                                    },
                                    "type": "object"
                                }
                            }
                        },
                        "description": "Not Found"
                    },
                    "500": {
                        "content": {
                            "application/json": {
                                "schema": {
                                    "allOf": [
                                        {
                                            "$ref": "#/components/schemas/error"
                                        }
                                    ],
                                    "properties": {
                                        "data": {},
                                        "error": {
                                            "$ref": "#/components/schemas/dto.ErrorInfo"
                                        },
                                        "meta": {
                                            "$ref": "#/components/schemas/dto.Meta"
                                        },
                                        "success": {
                                            "type": "boolean"
                                        }
                                    },
                                    "type": "object"
                                }
                            }
                        },
                        "description": "Internal Server Error"
                    }
                },
                "summary": "Update a pricing rule",
                "tags": [
                    "pricing-rules"
                ]
            }
        },
        "/system/info": {
            "get": {
                "description": "Returns basic system information including version and uptime",
                "operationId": "getSystemSystemInfo",
                "responses": {
                    "200": {
                        "content": {
                            "application/json": {
                                "schema": {
                                    "$ref": "#/components/schemas/handler.APIResponse-handler_SystemInfoResponse"
                                }
                            }
                        },
                        "description": "OK"
                    },
                    "500": {
                        "content": {
                            "application/json": {
                                "schema": {
                                    "$ref": "#/components/schemas/handler.ErrorResponse"
                                }
                            }
                        },
                        "description": "Internal Server Error"
                    }
                },
                "summary": "Get system information",
                "tags": [
                    "system"
                ]
            }
        },
        "/system/ping": {
            "get": {
                "description": "Simple ping endpoint to check if the API is responsive",
                "operationId": "pingSystem",
                "responses": {
                    "200": {
                        "content": {
                            "application/json": {
                                "schema": {
                                    "$ref": "#/components/schemas/handler.APIResponse-handler_PingResponse"
                                }
                            }
                        },
                        "description": "OK"
                    }
                },
                "summary": "Ping the API",
                "tags": [
                    "system"
                ]
            }
        }
    },
    "openapi": "3.1.0",
    "servers": [
        {
            "url": "localhost:8080/api/v1"
        }
    ]
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Title:            "Meatrics Pricing API",
	Description:      "Layered pricing rule engine for meat distribution",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
