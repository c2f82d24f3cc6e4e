package enrich

// planResponseFormat is the structured-output contract sent with every
// completion request. It mirrors the loose payload shapes mapPlan
// accepts.
const planResponseFormat = `{
  "type": "json_schema",
  "json_schema": {
    "name": "harmonia_plan",
    "schema": {
      "type": "object",
      "properties": {
        "recommendations": {
          "type": "array",
          "items": {
            "type": "object",
            "required": ["id", "title", "description"],
            "properties": {
              "id": {"type": "string"},
              "title": {"type": "string"},
              "description": {"type": "string"},
              "impact": {"type": "string"},
              "category": {"type": "string"},
              "timeframe": {"type": "string"}
            }
          }
        },
        "automations": {
          "type": "array",
          "items": {
            "type": "object",
            "required": ["id", "title", "detail"],
            "properties": {
              "id": {"type": "string"},
              "title": {"type": "string"},
              "detail": {"type": "string"},
              "status": {"type": "string"},
              "type": {"type": "string"}
            }
          }
        },
        "notes": {
          "type": "array",
          "items": {"type": "string"}
        },
        "schedule": {
          "type": "object",
          "properties": {
            "projects": {
              "type": "array",
              "items": {
                "type": "object",
                "required": ["title"],
                "properties": {
                  "_id": {"type": "number"},
                  "title": {"type": "string"},
                  "description": {"type": "string"},
                  "research_area": {"type": "string"},
                  "start_date": {"type": "string"},
                  "end_date": {"type": "string"},
                  "institution": {"type": "string"},
                  "status": {"type": "string"},
                  "priority": {"type": "string"}
                }
              }
            },
            "highlights": {
              "type": "array",
              "items": {"type": "string"}
            }
          }
        },
        "tasks": {
          "type": "object",
          "properties": {
            "today": {"$ref": "#/definitions/taskList"},
            "tomorrow": {"$ref": "#/definitions/taskList"},
            "upcoming": {"$ref": "#/definitions/taskList"}
          }
        },
        "insights": {
          "type": "object",
          "properties": {
            "flowHistory": {
              "type": "array",
              "items": {
                "type": "object",
                "properties": {
                  "time": {"type": "string"},
                  "focus": {"type": "number"}
                }
              }
            },
            "loadTrend": {
              "type": "array",
              "items": {
                "type": "object",
                "properties": {
                  "day": {"type": "string"},
                  "load": {"type": "number"}
                }
              }
            },
            "highlights": {
              "type": "array",
              "items": {"type": "string"}
            }
          }
        },
        "integrations": {
          "type": "array",
          "items": {
            "type": "object",
            "required": ["service", "description"],
            "properties": {
              "id": {"type": "string"},
              "service": {"type": "string"},
              "description": {"type": "string"},
              "connected": {"type": "boolean"},
              "premium": {"type": "boolean"},
              "category": {"type": "string"}
            }
          }
        }
      },
      "required": ["recommendations"],
      "definitions": {
        "taskList": {
          "type": "array",
          "items": {
            "type": "object",
            "required": ["title"],
            "properties": {
              "id": {"type": "string"},
              "title": {"type": "string"},
              "detail": {"type": "string"},
              "suggestion": {"type": "string"},
              "action": {"type": "string"},
              "type": {"type": "string"},
              "urgency": {"type": "string"}
            }
          }
        }
      }
    }
  }
}`
