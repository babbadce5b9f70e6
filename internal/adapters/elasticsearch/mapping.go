package elasticsearch

// DocumentIndexMapping defines the Elasticsearch mapping for the documents index.
// Fields not listed here are mapped dynamically, since file data is passed through as-is.
const DocumentIndexMapping = `{
  "settings": {
    "number_of_shards": 1,
    "number_of_replicas": 1,
    "analysis": {
      "analyzer": {
        "default": {
          "type": "standard"
        },
        "path_analyzer": {
          "type": "custom",
          "tokenizer": "path_hierarchy"
        }
      }
    }
  },
  "mappings": {
    "dynamic": true,
    "properties": {
      "objectID": {
        "type": "keyword"
      },
      "key": {
        "type": "keyword"
      },
      "path": {
        "type": "text",
        "analyzer": "path_analyzer",
        "fields": {
          "keyword": {
            "type": "keyword",
            "ignore_above": 512
          }
        }
      },
      "title": {
        "type": "text",
        "fields": {
          "keyword": {
            "type": "keyword",
            "ignore_above": 256
          }
        }
      },
      "description": {
        "type": "text"
      },
      "content": {
        "type": "text"
      },
      "tags": {
        "type": "keyword"
      },
      "size": {
        "type": "long"
      },
      "updated": {
        "type": "date",
        "format": "strict_date_optional_time||epoch_millis"
      }
    }
  }
}`
