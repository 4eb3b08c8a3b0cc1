package catalog

// Key layout. Entity hashes are keyed by ID; ordered ID lists drive pool
// iteration, so list order is pool order.
//
//	{prefix}brand:{id}            hash
//	{prefix}brands                list of brand IDs, creation order
//	{prefix}model:{id}            hash
//	{prefix}brand:{id}:models     list of model IDs, creation order
//	{prefix}variant:{id}          hash
//	{prefix}model:{id}:variants   list of variant IDs, creation order
//	{prefix}product:{id}          hash
//	{prefix}variant:{id}:products list of product IDs, creation order
func (r *Repo) brandKey(id string) string { return r.prefix + "brand:" + id }

func (r *Repo) brandsKey() string { return r.prefix + "brands" }

func (r *Repo) modelKey(id string) string { return r.prefix + "model:" + id }

func (r *Repo) brandModelsKey(id string) string { return r.prefix + "brand:" + id + ":models" }

func (r *Repo) variantKey(id string) string { return r.prefix + "variant:" + id }

func (r *Repo) modelVariantsKey(id string) string { return r.prefix + "model:" + id + ":variants" }

func (r *Repo) productKey(id string) string { return r.prefix + "product:" + id }

func (r *Repo) variantProductsKey(id string) string { return r.prefix + "variant:" + id + ":products" }
